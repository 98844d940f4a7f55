package viewer

// EventKind tells what an Event reports.
type EventKind int

const (
	Quit EventKind = iota
	KeyDown
	KeyUp
	// Resize carries a new surface size in terminal cells.
	Resize
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one input occurrence.
type Event struct {
	Kind EventKind
	Key  string

	Width, Height int
}

// EventSource yields the events that arrived since the last call. Poll must
// not block.
type EventSource interface {
	Poll() []Event
}

// Events is a fixed script of event batches, one batch per Poll. It is
// useful for headless runs and tests.
type Events struct {
	batches [][]Event
}

// NewEvents creates a scripted source. Once the batches run out Poll
// returns nothing.
func NewEvents(batches ...[]Event) *Events {
	return &Events{batches: batches}
}

// Poll returns the next batch.
func (e *Events) Poll() []Event {
	if len(e.batches) == 0 {
		return nil
	}
	b := e.batches[0]
	e.batches = e.batches[1:]
	return b
}

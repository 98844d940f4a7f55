package viewer

import (
	"context"
	"sync/atomic"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
)

// releaseAfter is how long a key counts as held after its last press when
// the terminal never reports key releases.
const releaseAfter = 150 * time.Millisecond

// TerminalEvents adapts an ultraviolet event stream to EventSource.
// Translation runs on its own goroutine; Poll only drains a buffer.
type TerminalEvents struct {
	ch chan Event

	// releases is set once the terminal reports a real key release. Until
	// then a held key is released after releaseAfter without repeats.
	releases atomic.Bool

	held      string
	lastPress time.Time
	now       func() time.Time
}

// NewTerminalEvents starts forwarding src until ctx is done or src closes.
func NewTerminalEvents(ctx context.Context, src <-chan uv.Event) *TerminalEvents {
	t := &TerminalEvents{
		ch:  make(chan Event, 64),
		now: time.Now,
	}
	go t.forward(ctx, src)
	return t
}

func (t *TerminalEvents) forward(ctx context.Context, src <-chan uv.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-src:
			if !ok {
				return
			}
			ev, ok := translate(raw)
			if !ok {
				continue
			}
			if ev.Kind == KeyUp {
				t.releases.Store(true)
			}
			select {
			case t.ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Poll drains pending events without blocking.
func (t *TerminalEvents) Poll() []Event {
	var out []Event
	for {
		select {
		case ev := <-t.ch:
			switch ev.Kind {
			case KeyDown:
				t.held = ev.Key
				t.lastPress = t.now()
			case KeyUp:
				t.held = ""
			}
			out = append(out, ev)
		default:
			return t.expire(out)
		}
	}
}

func (t *TerminalEvents) expire(out []Event) []Event {
	if t.held == "" || t.releases.Load() {
		return out
	}
	if t.now().Sub(t.lastPress) < releaseAfter {
		return out
	}
	out = append(out, Event{Kind: KeyUp, Key: t.held})
	t.held = ""
	return out
}

func translate(raw uv.Event) (Event, bool) {
	switch ev := raw.(type) {
	case uv.KeyPressEvent:
		if ev.MatchString("ctrl+c", "escape") {
			return Event{Kind: Quit}, true
		}
		return Event{Kind: KeyDown, Key: ev.String()}, true
	case uv.KeyReleaseEvent:
		return Event{Kind: KeyUp, Key: ev.String()}, true
	case uv.WindowSizeEvent:
		return Event{Kind: Resize, Width: ev.Width, Height: ev.Height}, true
	}
	return Event{}, false
}

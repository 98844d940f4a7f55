package wireframe

import "image/color"

// DefaultDisplayColor is the edge colour given to meshes added without one.
var DefaultDisplayColor = color.RGBA{250, 250, 250, 255}

// Entry is one named mesh in a Registry. A nil Color hides the mesh.
type Entry struct {
	Name  string
	Mesh  *Mesh
	Color *color.RGBA
}

// Registry maps unique names to meshes. Adding an existing name replaces the
// previous mesh in place; iteration follows first insertion.
type Registry struct {
	order   []string
	entries map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Add registers mesh under name with the default display colour.
func (r *Registry) Add(name string, mesh *Mesh) {
	c := DefaultDisplayColor
	r.AddWithColor(name, mesh, &c)
}

// AddWithColor registers mesh under name. Pass nil to keep the mesh out of
// the drawn frame.
func (r *Registry) AddWithColor(name string, mesh *Mesh, c *color.RGBA) {
	c = copyColor(c)
	if e, ok := r.entries[name]; ok {
		e.Mesh = mesh
		e.Color = c
		return
	}
	r.order = append(r.order, name)
	r.entries[name] = &Entry{Name: name, Mesh: mesh, Color: c}
}

// AddGroup copies every entry of other into r. Names already present in r
// are overwritten.
func (r *Registry) AddGroup(other *Registry) {
	for _, e := range other.Entries() {
		r.AddWithColor(e.Name, e.Mesh, e.Color)
	}
}

// SetColor changes the display colour of a registered mesh. It reports
// whether name was found.
func (r *Registry) SetColor(name string, c *color.RGBA) bool {
	e, ok := r.entries[name]
	if !ok {
		return false
	}
	e.Color = copyColor(c)
	return true
}

func copyColor(c *color.RGBA) *color.RGBA {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

// Get returns the mesh registered under name.
func (r *Registry) Get(name string) (*Mesh, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.Mesh, true
}

// Len returns the number of registered meshes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Entries returns the entries in iteration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.entries[name])
	}
	return out
}

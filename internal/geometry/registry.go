// Package geometry provides the host-side geometry registry backing the
// walkthrough's injected GeometryProvider capability.
//
// The TUI registers the bounding box of each named region as it lays out a
// frame; the walkthrough controller resolves step targets against those
// registrations. The registry also tracks the current viewport dimensions
// and document scroll offsets.
//
// The registry is owned by the UI loop and is not safe for concurrent use;
// all reads and writes must happen on that goroutine.
package geometry

import "github.com/Iron-Ham/tourguide/internal/walkthrough"

// Registry maps target ids to on-screen bounding boxes and tracks viewport
// state. The zero value is not usable; call NewRegistry.
type Registry struct {
	boxes    map[string]walkthrough.Box
	viewport walkthrough.Viewport
	scroll   walkthrough.Offset
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		boxes: make(map[string]walkthrough.Box),
	}
}

// Register records the bounding box for a target id, replacing any previous
// registration. Layout code calls this once per region per frame.
func (r *Registry) Register(id string, box walkthrough.Box) {
	r.boxes[id] = box
}

// Remove drops a target registration, e.g. when its region leaves the layout.
func (r *Registry) Remove(id string) {
	delete(r.boxes, id)
}

// Clear drops all target registrations. Layout code calls this at the start
// of a frame so stale regions don't linger across layout changes.
func (r *Registry) Clear() {
	clear(r.boxes)
}

// SetViewport records the current viewport dimensions.
func (r *Registry) SetViewport(v walkthrough.Viewport) {
	r.viewport = v
}

// SetScroll records the current document scroll offsets.
func (r *Registry) SetScroll(o walkthrough.Offset) {
	r.scroll = o
}

// TargetBox returns the bounding box registered for id, or false when the
// target is unknown this frame.
func (r *Registry) TargetBox(id string) (walkthrough.Box, bool) {
	box, ok := r.boxes[id]
	return box, ok
}

// Viewport returns the current viewport dimensions.
func (r *Registry) Viewport() walkthrough.Viewport {
	return r.viewport
}

// ScrollOffset returns the current document scroll offsets.
func (r *Registry) ScrollOffset() walkthrough.Offset {
	return r.scroll
}

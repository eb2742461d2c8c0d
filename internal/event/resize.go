package event

// ResizeNotifier adapts the bus to a plain subscribe/unsubscribe pair for
// "viewport dimensions changed" notifications with no payload. It satisfies
// the walkthrough controller's notifier interface without the controller
// depending on bus event types.
type ResizeNotifier struct {
	bus *Bus
}

// NewResizeNotifier creates a ResizeNotifier over the given bus.
func NewResizeNotifier(bus *Bus) *ResizeNotifier {
	return &ResizeNotifier{bus: bus}
}

// Subscribe registers fn to run on every viewport resize and returns a
// cancel function that releases the subscription. Cancel is idempotent.
func (n *ResizeNotifier) Subscribe(fn func()) (cancel func()) {
	id := n.bus.Subscribe(TypeViewportResized, func(Event) { fn() })
	done := false
	return func() {
		if done {
			return
		}
		done = true
		n.bus.Unsubscribe(id)
	}
}

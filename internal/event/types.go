package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "viewport.resized").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Viewport Events
// -----------------------------------------------------------------------------

// TypeViewportResized identifies viewport-resize events.
const TypeViewportResized = "viewport.resized"

// ViewportResizedEvent is emitted when the viewport dimensions change.
// Subscribers that only care that a resize happened (not its payload) can
// use a ResizeNotifier instead of subscribing directly.
type ViewportResizedEvent struct {
	baseEvent
	Width  int // New viewport width in cells
	Height int // New viewport height in cells
}

// NewViewportResizedEvent creates a ViewportResizedEvent.
func NewViewportResizedEvent(width, height int) ViewportResizedEvent {
	return ViewportResizedEvent{
		baseEvent: newBaseEvent(TypeViewportResized),
		Width:     width,
		Height:    height,
	}
}

// -----------------------------------------------------------------------------
// Walkthrough Lifecycle Events
// -----------------------------------------------------------------------------

// StepChangedEvent is emitted when the walkthrough enters a step.
type StepChangedEvent struct {
	baseEvent
	PreviousIndex int    // Index before the transition (-1 when starting)
	Index         int    // Index of the step now displayed
	TargetID      string // Target the new step is anchored to
}

// NewStepChangedEvent creates a StepChangedEvent.
func NewStepChangedEvent(previousIndex, index int, targetID string) StepChangedEvent {
	return StepChangedEvent{
		baseEvent:     newBaseEvent("walkthrough.step_changed"),
		PreviousIndex: previousIndex,
		Index:         index,
		TargetID:      targetID,
	}
}

// WalkthroughClosedEvent is emitted when the walkthrough ends, either by
// advancing past the last step or by an explicit close.
type WalkthroughClosedEvent struct {
	baseEvent
	LastIndex int  // Step that was displayed when the walkthrough ended
	Completed bool // True when the last step's advance ended the walkthrough
}

// NewWalkthroughClosedEvent creates a WalkthroughClosedEvent.
func NewWalkthroughClosedEvent(lastIndex int, completed bool) WalkthroughClosedEvent {
	return WalkthroughClosedEvent{
		baseEvent: newBaseEvent("walkthrough.closed"),
		LastIndex: lastIndex,
		Completed: completed,
	}
}

// TargetMissingEvent is emitted when the active step's target cannot be
// located. The walkthrough keeps its previous placement; this event exists
// for observability only.
type TargetMissingEvent struct {
	baseEvent
	Index    int    // Active step index
	TargetID string // Target that could not be resolved
}

// NewTargetMissingEvent creates a TargetMissingEvent.
func NewTargetMissingEvent(index int, targetID string) TargetMissingEvent {
	return TargetMissingEvent{
		baseEvent: newBaseEvent("walkthrough.target_missing"),
		Index:     index,
		TargetID:  targetID,
	}
}

// -----------------------------------------------------------------------------
// Step Manifest Events
// -----------------------------------------------------------------------------

// StepsReloadedEvent is emitted when the step manifest file changes on disk
// and a fresh sequence has been loaded.
type StepsReloadedEvent struct {
	baseEvent
	Path  string // Manifest path that changed
	Count int    // Number of steps in the reloaded sequence
}

// NewStepsReloadedEvent creates a StepsReloadedEvent.
func NewStepsReloadedEvent(path string, count int) StepsReloadedEvent {
	return StepsReloadedEvent{
		baseEvent: newBaseEvent("steps.reloaded"),
		Path:      path,
		Count:     count,
	}
}

// Package event provides a synchronous pub-sub event bus for decoupled
// communication between the walkthrough core and its host.
//
// The host publishes viewport events (resizes) without knowing who consumes
// them, and the walkthrough controller publishes lifecycle events (step
// changes, close, missing targets) without knowing who observes progress.
//
// # Main Types
//
//   - [Event]: interface all events implement, providing EventType() and Timestamp()
//   - [Bus]: synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: function type for event handlers
//   - [ResizeNotifier]: subscribe/unsubscribe adapter over the bus for
//     "viewport dimensions changed" notifications
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - viewport.resized
//   - walkthrough.step_changed, walkthrough.closed, walkthrough.target_missing
//   - steps.reloaded
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers are called synchronously and
// are protected against panics: a panicking handler cannot prevent delivery
// to the remaining handlers.
package event

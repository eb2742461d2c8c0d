// Package walkthrough implements the core of an element-anchored walkthrough
// overlay: a step-navigation state machine and a pure placement engine that
// translates step descriptors into absolute on-screen tooltip coordinates.
//
// The package is host-agnostic. It never reads viewport state from ambient
// globals; geometry lookups and resize notifications are injected capabilities
// ([GeometryProvider] and [ResizeNotifier]), which keeps the core fully
// deterministic and testable without a real rendering surface.
//
// # Main Types
//
//   - [Step]: one unit of a walkthrough (target id, text, anchors, offsets, style)
//   - [Sequence]: an ordered, immutable list of steps
//   - [Engine]: pure placement computation with anchor rules and edge clamping
//   - [Controller]: the Inactive/Active(i) state machine with advance/close
//     operations and resize-subscription lifecycle
//
// # State Machine
//
// A controller is either Inactive (no step displayed, index -1) or Active(i)
// for i in [0, len(steps)). Advance moves to the next step, or to Inactive
// from the last step. Close moves to Inactive from any active step. Both are
// no-ops while Inactive. A finished walkthrough cannot be restarted without
// constructing a new controller.
//
// # Concurrency
//
// The controller is designed for single-threaded, event-driven (UI loop)
// use. It holds no locks; callers must confine all calls, including resize
// notifications, to one goroutine.
package walkthrough

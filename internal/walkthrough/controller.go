package walkthrough

import (
	"slices"

	"github.com/Iron-Ham/tourguide/internal/event"
	"github.com/Iron-Ham/tourguide/internal/logging"
)

// InactiveIndex is the sentinel active index meaning no step is displayed:
// the walkthrough is finished, closed, or was never started.
const InactiveIndex = -1

// GeometryProvider supplies on-screen geometry to the controller. It is an
// injected capability so tests can run without a rendering surface.
type GeometryProvider interface {
	// TargetBox returns the bounding box for a target id in viewport
	// coordinates, or false when the target cannot be located this frame.
	TargetBox(id string) (Box, bool)

	// Viewport returns the current viewport dimensions.
	Viewport() Viewport

	// ScrollOffset returns the current document scroll offsets.
	ScrollOffset() Offset
}

// ResizeNotifier delivers viewport-resize notifications. Subscribe registers
// fn to be invoked on each notification and returns a cancel function that
// releases the subscription.
type ResizeNotifier interface {
	Subscribe(fn func()) (cancel func())
}

// ControllerConfig bundles the collaborators and options for a Controller.
type ControllerConfig struct {
	// Steps is the ordered step sequence. May be empty.
	Steps Sequence
	// Geometry resolves target boxes and viewport state.
	Geometry GeometryProvider
	// Resize delivers viewport-resize notifications. Optional; without it
	// placement is only recomputed on step changes.
	Resize ResizeNotifier
	// Engine computes placements. The zero value falls back to
	// DefaultTooltipWidth.
	Engine Engine
	// TooltipStyle is the default tooltip style that per-step overrides are
	// merged over.
	TooltipStyle TooltipStyle
	// AutoStart shows step 0 immediately at construction. Without it the
	// controller stays Inactive; there is no public way to start it later.
	AutoStart bool
	// Events optionally receives walkthrough lifecycle events.
	Events *event.Bus
	// Logger optionally receives transition and missing-target log lines.
	Logger *logging.Logger
}

// Controller owns the walkthrough's navigation state: the active step index,
// the step sequence, and the derived tooltip placement. It is the only
// writer of the active index.
//
// Controller methods must be called from a single goroutine (the UI loop);
// see the package documentation.
type Controller struct {
	steps    Sequence
	geo      GeometryProvider
	notifier ResizeNotifier
	engine   Engine
	base     TooltipStyle
	events   *event.Bus
	log      *logging.Logger

	active       int
	placement    *Placement
	activeStyle  TooltipStyle
	cancelResize func()
}

// NewController builds a Controller. With cfg.AutoStart and a non-empty
// sequence it enters Active(0) immediately, acquiring the resize
// subscription and computing the first placement; otherwise it starts, and
// stays, Inactive.
func NewController(cfg ControllerConfig) *Controller {
	c := &Controller{
		steps:       cfg.Steps,
		geo:         cfg.Geometry,
		notifier:    cfg.Resize,
		engine:      cfg.Engine,
		base:        cfg.TooltipStyle,
		events:      cfg.Events,
		log:         cfg.Logger,
		active:      InactiveIndex,
		activeStyle: cfg.TooltipStyle,
	}
	if c.engine.TooltipWidth <= 0 {
		c.engine = NewEngine(0)
	}
	if cfg.AutoStart && len(c.steps) > 0 {
		c.enterActive(0)
	}
	return c
}

// Advance moves to the next step, or to Inactive when called on the last
// step (the last step's "next" action closes the walkthrough). Calling
// Advance while Inactive is a no-op.
func (c *Controller) Advance() {
	if c.active == InactiveIndex {
		return
	}
	if c.active == len(c.steps)-1 {
		c.exitActive(true)
		return
	}
	c.enterActive(c.active + 1)
}

// Close terminates the walkthrough from any active step. Calling Close
// while Inactive is a no-op.
func (c *Controller) Close() {
	if c.active == InactiveIndex {
		return
	}
	c.exitActive(false)
}

// Release tears down the resize subscription unconditionally, regardless of
// current state, and leaves the controller Inactive. Hosts must call it when
// the walkthrough unmounts so no listener leaks past the controller's
// lifetime. Release is idempotent.
func (c *Controller) Release() {
	c.releaseResize()
	c.active = InactiveIndex
}

// Active returns the current step index, or InactiveIndex.
func (c *Controller) Active() int {
	return c.active
}

// ActiveStep returns the currently displayed step, if any.
func (c *Controller) ActiveStep() (Step, bool) {
	if c.active == InactiveIndex {
		return Step{}, false
	}
	return c.steps[c.active], true
}

// Placement returns the last computed tooltip placement. ok is false while
// no placement has ever been computed or the controller is Inactive.
func (c *Controller) Placement() (Placement, bool) {
	if c.active == InactiveIndex || c.placement == nil {
		return Placement{}, false
	}
	return *c.placement, true
}

// ActiveStyle returns the effective tooltip style for the current step: the
// step's override shallow-merged over the default style. While Inactive it
// returns the default style.
func (c *Controller) ActiveStyle() TooltipStyle {
	return c.activeStyle
}

// View returns the read-only snapshot exposed to descendant presentational
// code. The step slice is cloned so descendants cannot mutate the sequence.
func (c *Controller) View() View {
	return View{
		ActiveIndex: c.active,
		Steps:       slices.Clone(c.steps),
	}
}

// enterActive transitions into Active(i). The resize subscription is
// acquired only on the Inactive -> Active edge; step-to-step moves keep the
// existing subscription, so exactly one is live while active.
func (c *Controller) enterActive(i int) {
	from := c.active
	c.active = i
	c.activeStyle = MergeStyle(c.base, c.steps[i].Style)
	if from == InactiveIndex {
		c.acquireResize()
	}
	c.debug("step entered", "index", i, "target", c.steps[i].TargetID)
	if c.events != nil {
		c.events.Publish(event.NewStepChangedEvent(from, i, c.steps[i].TargetID))
	}
	c.recompute()
}

// exitActive transitions into Inactive and releases the resize subscription.
// completed distinguishes advancing past the last step from an explicit close.
func (c *Controller) exitActive(completed bool) {
	last := c.active
	c.active = InactiveIndex
	c.activeStyle = c.base
	c.releaseResize()
	c.debug("walkthrough ended", "last_index", last, "completed", completed)
	if c.events != nil {
		c.events.Publish(event.NewWalkthroughClosedEvent(last, completed))
	}
}

// recompute refreshes the placement for the current step. A target that
// cannot be located is never fatal: the previous placement is retained and
// a warning is emitted, so a missing element cannot crash navigation.
func (c *Controller) recompute() {
	if c.active == InactiveIndex || c.geo == nil {
		return
	}
	step := c.steps[c.active]
	box, ok := c.geo.TargetBox(step.TargetID)
	if !ok {
		c.warn("target not found, placement retained", "index", c.active, "target", step.TargetID)
		if c.events != nil {
			c.events.Publish(event.NewTargetMissingEvent(c.active, step.TargetID))
		}
		return
	}
	p := c.engine.Compute(step, box, c.geo.Viewport(), c.geo.ScrollOffset())
	c.placement = &p
}

// acquireResize establishes the single live resize subscription. Each
// notification recomputes placement for whichever step is current at
// delivery time; the index never changes on resize.
func (c *Controller) acquireResize() {
	if c.notifier == nil || c.cancelResize != nil {
		return
	}
	c.cancelResize = c.notifier.Subscribe(c.recompute)
}

// releaseResize releases the resize subscription if one is held.
func (c *Controller) releaseResize() {
	if c.cancelResize == nil {
		return
	}
	c.cancelResize()
	c.cancelResize = nil
}

func (c *Controller) debug(msg string, args ...any) {
	if c.log != nil {
		c.log.Debug(msg, args...)
	}
}

func (c *Controller) warn(msg string, args ...any) {
	if c.log != nil {
		c.log.Warn(msg, args...)
	}
}

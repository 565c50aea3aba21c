package dom

// EventPhase describes which phase of dispatch an Event is currently in.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event is a plain, dispatch-agnostic representation of a DOM event object.
// It carries the flags and legacy accessors the DOM spec defines on Event,
// but does not itself implement capture/target/bubble traversal — dispatch
// is the responsibility of whatever owns the event target tree.
type Event struct {
	eventType  string
	target     *Node
	currentTgt *Node
	eventPhase EventPhase
	bubbles    bool
	cancelable bool
	composed   bool
	timeStamp  float64

	defaultPrevented bool
	isTrusted        bool

	stopPropagationFlag          bool
	stopImmediatePropagationFlag bool
	canceledFlag                 bool
	inPassiveListenerFlag        bool
	dispatchFlag                 bool
	initializedFlag              bool
}

// NewEvent creates an initialized Event per the Event(type, eventInitDict)
// constructor steps: initialized flag set, isTrusted false.
func NewEvent(eventType string, bubbles, cancelable, composed bool) *Event {
	return &Event{
		eventType:       eventType,
		bubbles:         bubbles,
		cancelable:      cancelable,
		composed:        composed,
		initializedFlag: true,
	}
}

// Type returns the event's type.
func (e *Event) Type() string { return e.eventType }

// Target returns the event's target, or nil.
func (e *Event) Target() *Node { return e.target }

// SetTarget sets the event's target. Exposed for dispatch implementations.
func (e *Event) SetTarget(n *Node) { e.target = n }

// CurrentTarget returns the object whose event listener is currently invoked.
func (e *Event) CurrentTarget() *Node { return e.currentTgt }

// SetCurrentTarget sets the currentTarget. Exposed for dispatch implementations.
func (e *Event) SetCurrentTarget(n *Node) { e.currentTgt = n }

// SrcElement is a legacy alias for Target.
func (e *Event) SrcElement() *Node { return e.target }

// EventPhaseValue returns the event's current phase.
func (e *Event) EventPhaseValue() EventPhase { return e.eventPhase }

// SetEventPhase sets the event's current phase. Exposed for dispatch implementations.
func (e *Event) SetEventPhase(p EventPhase) { e.eventPhase = p }

// Bubbles reports whether the event bubbles.
func (e *Event) Bubbles() bool { return e.bubbles }

// Cancelable reports whether the event's default action can be prevented.
func (e *Event) Cancelable() bool { return e.cancelable }

// Composed reports whether the event crosses shadow-tree boundaries.
func (e *Event) Composed() bool { return e.composed }

// IsTrusted reports whether the event was dispatched by the user agent
// itself rather than by script. Always false for events created via NewEvent.
func (e *Event) IsTrusted() bool { return e.isTrusted }

// SetTrusted marks the event as user-agent dispatched. Exposed for
// dispatch implementations that originate synthetic but trusted events.
func (e *Event) SetTrusted(trusted bool) { e.isTrusted = trusted }

// TimeStamp returns the creation time of the event, in milliseconds since
// the time origin. Callers stamp this themselves; Event never reads the clock.
func (e *Event) TimeStamp() float64 { return e.timeStamp }

// SetTimeStamp sets the event's timeStamp. Exposed for dispatch implementations.
func (e *Event) SetTimeStamp(ms float64) { e.timeStamp = ms }

// DefaultPrevented reports whether preventDefault() has had an effect.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// SetDispatchFlag marks the event as mid-dispatch. While set, initEvent is
// a no-op. Exposed for dispatch implementations.
func (e *Event) SetDispatchFlag(b bool) { e.dispatchFlag = b }

// DispatchFlag reports whether the event is mid-dispatch.
func (e *Event) DispatchFlag() bool { return e.dispatchFlag }

// SetInPassiveListener marks whether the currently invoked listener was
// registered passive; preventDefault() is then a no-op.
func (e *Event) SetInPassiveListener(b bool) { e.inPassiveListenerFlag = b }

// PropagationStopped reports whether stopPropagation (or
// stopImmediatePropagation) has been called.
func (e *Event) PropagationStopped() bool { return e.stopPropagationFlag }

// ImmediatePropagationStopped reports whether stopImmediatePropagation has
// been called.
func (e *Event) ImmediatePropagationStopped() bool { return e.stopImmediatePropagationFlag }

// StopPropagation sets the stop propagation flag.
func (e *Event) StopPropagation() {
	e.stopPropagationFlag = true
}

// StopImmediatePropagation sets both the stop propagation and stop
// immediate propagation flags.
func (e *Event) StopImmediatePropagation() {
	e.stopPropagationFlag = true
	e.stopImmediatePropagationFlag = true
}

// PreventDefault sets the canceled flag if the event is cancelable and the
// currently invoked listener is not passive.
func (e *Event) PreventDefault() {
	if e.cancelable && !e.inPassiveListenerFlag {
		e.canceledFlag = true
		e.defaultPrevented = true
	}
}

// GetCancelBubble is the legacy getter for cancelBubble, an alias for the
// stop propagation flag.
func (e *Event) GetCancelBubble() bool {
	return e.stopPropagationFlag
}

// SetCancelBubble is the legacy setter for cancelBubble. Per spec, setting
// it to true is equivalent to calling stopPropagation(); setting it to
// false has no effect (the flag cannot be cleared).
func (e *Event) SetCancelBubble(b bool) {
	if b {
		e.stopPropagationFlag = true
	}
}

// GetReturnValue is the legacy getter for returnValue, the inverse of
// DefaultPrevented.
func (e *Event) GetReturnValue() bool {
	return !e.defaultPrevented
}

// SetReturnValue is the legacy setter for returnValue. Setting it to false
// is equivalent to calling PreventDefault(); setting it to true has no effect.
func (e *Event) SetReturnValue(b bool) {
	if !b {
		e.PreventDefault()
	}
}

// InitEvent reinitializes a not-yet-dispatched event, per the legacy
// initEvent(type, bubbles, cancelable) method. A no-op while the dispatch
// flag is set.
func (e *Event) InitEvent(eventType string, bubbles, cancelable bool) {
	if e.dispatchFlag {
		return
	}
	e.initializedFlag = true
	e.stopPropagationFlag = false
	e.stopImmediatePropagationFlag = false
	e.canceledFlag = false
	e.defaultPrevented = false
	e.isTrusted = false
	e.eventType = eventType
	e.bubbles = bubbles
	e.cancelable = cancelable
}

// ComposedPath returns the event's composed path. Dispatch is out of scope,
// so there is never an active path to report.
func (e *Event) ComposedPath() []*Node {
	return nil
}

// Phase constants exposed on Event per the legacy NONE/CAPTURING_PHASE/
// AT_TARGET/BUBBLING_PHASE constants.
const (
	EventNone           = EventPhaseNone
	EventCapturingPhase = EventPhaseCapturing
	EventAtTarget       = EventPhaseAtTarget
	EventBubblingPhase  = EventPhaseBubbling
)

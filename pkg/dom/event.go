package dom

// EventType names one of the DOM-style events the core dispatcher
// recognizes. Only the handful spec.md's frame loop needs are modeled:
// everything richer (drag, wheel, composition) is a host/script concern.
type EventType string

const (
	EventClick      EventType = "click"
	EventMouseEnter EventType = "mouseenter"
	EventMouseLeave EventType = "mouseleave"
	EventMouseDown  EventType = "mousedown"
	EventMouseUp    EventType = "mouseup"
	EventFocus      EventType = "focus"
	EventBlur       EventType = "blur"
)

// Event is the payload passed to a Listener. Target is the element the
// event was dispatched at; X/Y are pointer coordinates in the root's
// coordinate system for pointer events, zero otherwise.
type Event struct {
	Type            EventType
	Target          *Element
	X, Y            float64
	stopped         bool
	stoppedAtTarget bool
}

// StopPropagation halts the bubble walk after the current listener
// returns, matching DOM's Event.stopPropagation.
func (ev *Event) StopPropagation() { ev.stopped = true }

// StopImmediatePropagation additionally skips any remaining listeners
// registered on the current target.
func (ev *Event) StopImmediatePropagation() { ev.stopped = true; ev.stoppedAtTarget = true }

// Listener is a user or script callback registered for one event type.
type Listener func(*Event)

// AddEventListener registers fn to run whenever typ is dispatched at e (or
// bubbles through it).
func (e *Element) AddEventListener(typ EventType, fn Listener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], fn)
}

// RemoveAllEventListeners clears every listener registered for typ on e.
func (e *Element) RemoveAllEventListeners(typ EventType) {
	delete(e.listeners, typ)
}

// Dispatch fires typ at e and bubbles it up through ancestors, calling
// back synchronously per spec.md section 5 ("Event callbacks registered by
// user scripts are called back synchronously from the core's event
// dispatcher").
func (e *Element) Dispatch(typ EventType, x, y float64) {
	ev := &Event{Type: typ, Target: e, X: x, Y: y}
	for cur := e; cur != nil; cur = cur.parent {
		for _, fn := range cur.listeners[typ] {
			fn(ev)
			if ev.stoppedAtTarget {
				break
			}
		}
		if ev.stopped {
			return
		}
	}
}

// HandlePointerMove re-hit-tests the tree at (x,y), toggling :hover on the
// elements that changed and firing mouseenter/mouseleave along the way.
// Returns the new hover target (nil if the pointer left the document).
func HandlePointerMove(root *Element, prevHover *Element, x, y float64) *Element {
	next := root.Collide(x, y)
	if next == prevHover {
		return prevHover
	}

	for cur := prevHover; cur != nil && !ancestorOrSelf(cur, next); cur = cur.parent {
		cur.SetHover(false)
		cur.Dispatch(EventMouseLeave, x, y)
	}
	for cur := next; cur != nil && !ancestorOrSelf(cur, prevHover); cur = cur.parent {
		cur.SetHover(true)
		cur.Dispatch(EventMouseEnter, x, y)
	}
	return next
}

func ancestorOrSelf(n, target *Element) bool {
	for cur := target; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// HandlePointerDown hit-tests (x,y), sets :active on the target, and
// dispatches mousedown.
func HandlePointerDown(root *Element, x, y float64) *Element {
	target := root.Collide(x, y)
	if target != nil {
		target.SetActive(true)
		target.Dispatch(EventMouseDown, x, y)
	}
	return target
}

// HandlePointerUp clears :active on activeTarget, dispatches mouseup, and
// fires click if the release lands back on the same element the press
// started on.
func HandlePointerUp(root *Element, activeTarget *Element, x, y float64) {
	if activeTarget != nil {
		activeTarget.SetActive(false)
		activeTarget.Dispatch(EventMouseUp, x, y)
	}
	target := root.Collide(x, y)
	if target != nil && target == activeTarget {
		target.Dispatch(EventClick, x, y)
	}
}

// HandleFocus moves focus from prev (may be nil) to next, dispatching
// blur/focus. Only one element in a document is focused at a time.
func HandleFocus(prev, next *Element) {
	if prev == next {
		return
	}
	if prev != nil {
		prev.SetFocus(false)
		prev.Dispatch(EventBlur, 0, 0)
	}
	if next != nil {
		next.SetFocus(true)
		next.Dispatch(EventFocus, 0, 0)
	}
}

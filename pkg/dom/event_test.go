package dom

import (
	"testing"

	"wisp/pkg/style"
)

func TestDispatchBubblesThroughAncestors(t *testing.T) {
	root := NewElement("div")
	child := NewElement("span")
	root.AppendChild(child)

	var fired []string
	root.AddEventListener(EventClick, func(ev *Event) { fired = append(fired, "root") })
	child.AddEventListener(EventClick, func(ev *Event) { fired = append(fired, "child") })

	child.Dispatch(EventClick, 1, 2)

	if len(fired) != 2 || fired[0] != "child" || fired[1] != "root" {
		t.Fatalf("expected [child root] bubble order, got %v", fired)
	}
}

func TestStopPropagationHaltsBubble(t *testing.T) {
	root := NewElement("div")
	child := NewElement("span")
	root.AppendChild(child)

	rootFired := false
	root.AddEventListener(EventClick, func(ev *Event) { rootFired = true })
	child.AddEventListener(EventClick, func(ev *Event) { ev.StopPropagation() })

	child.Dispatch(EventClick, 0, 0)

	if rootFired {
		t.Errorf("expected stopPropagation to prevent the root listener from firing")
	}
}

func TestHandlePointerMoveTogglesHoverAndFiresEnterLeave(t *testing.T) {
	root := NewElement("div")
	root.SetAttribute("style", "width: 100px; height: 100px;")
	a := NewElement("div")
	a.SetAttribute("style", "display: block; width: 10px; height: 10px;")
	b := NewElement("div")
	b.SetAttribute("style", "display: block; width: 10px; height: 10px;")
	root.AppendChild(a)
	root.AppendChild(b)

	var entered, left []string
	a.AddEventListener(EventMouseEnter, func(ev *Event) { entered = append(entered, "a") })
	a.AddEventListener(EventMouseLeave, func(ev *Event) { left = append(left, "a") })
	b.AddEventListener(EventMouseEnter, func(ev *Event) { entered = append(entered, "b") })

	pool := style.NewPool()
	root.Compute(nil, style.Viewport{Width: 200, Height: 200}, pool)
	root.Layout(200, 200, fakeMetrics{})

	hover := HandlePointerMove(root, nil, a.Box.X+1, a.Box.Y+1)
	if hover != a || !a.State(StateHover) {
		t.Fatalf("expected a to become hovered")
	}

	hover = HandlePointerMove(root, hover, b.Box.X+1, b.Box.Y+1)
	if hover != b || !b.State(StateHover) {
		t.Fatalf("expected hover to move to b")
	}
	if a.State(StateHover) {
		t.Errorf("expected a to lose hover")
	}
	if len(entered) != 2 || entered[0] != "a" || entered[1] != "b" {
		t.Errorf("expected enter order [a b], got %v", entered)
	}
	if len(left) != 1 || left[0] != "a" {
		t.Errorf("expected a single leave event for a, got %v", left)
	}
}

func TestHandlePointerDownUpFiresClickOnMatchingRelease(t *testing.T) {
	root := NewElement("div")
	root.SetAttribute("style", "width: 100px; height: 100px;")
	btn := NewElement("div")
	btn.SetAttribute("style", "display: block; width: 20px; height: 20px;")
	root.AppendChild(btn)

	clicked := false
	btn.AddEventListener(EventClick, func(ev *Event) { clicked = true })

	pool := style.NewPool()
	root.Compute(nil, style.Viewport{Width: 200, Height: 200}, pool)
	root.Layout(200, 200, fakeMetrics{})

	active := HandlePointerDown(root, btn.Box.X+1, btn.Box.Y+1)
	if active != btn || !btn.State(StateActive) {
		t.Fatalf("expected btn to become active")
	}
	HandlePointerUp(root, active, btn.Box.X+1, btn.Box.Y+1)
	if btn.State(StateActive) {
		t.Errorf("expected active to clear on release")
	}
	if !clicked {
		t.Errorf("expected click to fire when press and release land on the same element")
	}
}

func TestHandleFocusDispatchesBlurAndFocus(t *testing.T) {
	a := NewElement("input")
	b := NewElement("input")

	var events []string
	a.AddEventListener(EventBlur, func(ev *Event) { events = append(events, "blur-a") })
	b.AddEventListener(EventFocus, func(ev *Event) { events = append(events, "focus-b") })

	HandleFocus(nil, a)
	HandleFocus(a, b)

	if !b.State(StateFocus) {
		t.Errorf("expected b focused")
	}
	if a.State(StateFocus) {
		t.Errorf("expected a to lose focus")
	}
	if len(events) != 2 || events[0] != "blur-a" || events[1] != "focus-b" {
		t.Errorf("expected [blur-a focus-b], got %v", events)
	}
}

package dom

import "strings"

// SyncAttributeDrivenState recomputes the state bits that attributes (not
// user interaction) control: disabled/checked/required from the presence of
// their boolean attribute, and blank/valid from the control's current
// value. Called after SetAttribute/RemoveAttribute touches one of these
// attributes, since those bits feed selector matching just like hover/focus
// do but are derived rather than toggled directly.
func (e *Element) SyncAttributeDrivenState() {
	_, disabled := e.GetAttribute("disabled")
	e.SetState(StateDisabled, disabled)

	_, checked := e.GetAttribute("checked")
	e.SetState(StateChecked, checked)

	_, required := e.GetAttribute("required")
	e.SetState(StateRequired, required)

	value, _ := e.GetAttribute("value")
	e.SetState(StateBlank, strings.TrimSpace(value) == "")
	e.SetState(StateValid, !required || strings.TrimSpace(value) != "")
}

// SetHover sets e's hover state, propagating to nothing else: spec.md's
// `:hover` is matched per-element, not inherited by ancestors, so each
// element along a pointer path gets its own SetHover call from the event
// dispatcher's hover-transition walk.
func (e *Element) SetHover(on bool) { e.SetState(StateHover, on) }

// SetFocus sets e's focus state. Only one element in a document is
// normally focused at a time; callers are responsible for clearing the
// previous focus target before focusing a new one.
func (e *Element) SetFocus(on bool) { e.SetState(StateFocus, on) }

// SetActive sets e's active (pressed) state.
func (e *Element) SetActive(on bool) { e.SetState(StateActive, on) }

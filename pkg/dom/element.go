// Package dom owns the element tree: parsed HTML turned into a tree of
// *Element nodes that carry attributes, inline/cascaded/computed style,
// a layout box, and the dynamic state bits selectors and events consult.
package dom

import (
	"strings"

	"wisp/pkg/layout"
	"wisp/pkg/style"
)

// PseudoState is one dynamic state bit a selector's :pseudo-class or an
// event handler can flip.
type PseudoState int

const (
	StateHover PseudoState = iota
	StateFocus
	StateActive
	StateVisited
	StateDisabled
	StateChecked
	StateRequired
	StateBlank
	StateValid
	numStates
)

var pseudoStateNames = map[string]PseudoState{
	"hover":    StateHover,
	"focus":    StateFocus,
	"active":   StateActive,
	"visited":  StateVisited,
	"disabled": StateDisabled,
	"checked":  StateChecked,
	"required": StateRequired,
	"blank":    StateBlank,
	"valid":    StateValid,
}

// Element is one node in the owned tree: an HTML element or a text node
// (IsTextNode true). Attribute names are stored case-insensitively;
// insertion order is preserved separately for iteration.
type Element struct {
	tag        string
	attrs      map[string]string
	attrOrder  []string
	text       string
	IsTextNode bool

	children []*Element
	parent   *Element

	InlineStyle      []style.Declaration
	ExternalCascaded style.RawStyle
	Computed         *style.ComputedStyle
	Box              *layout.Box

	states    [numStates]bool
	listeners map[EventType][]Listener

	StyleDirty  bool
	LayoutDirty bool
}

// NewElement creates an element node for tag, with dirty bits set so the
// next frame recascades and relays it out.
func NewElement(tag string) *Element {
	return &Element{tag: tag, StyleDirty: true, LayoutDirty: true}
}

// NewTextNode creates a text node carrying text, parented nowhere yet.
func NewTextNode(text string) *Element {
	return &Element{IsTextNode: true, text: text, StyleDirty: true, LayoutDirty: true}
}

func normalizeAttrName(name string) string { return strings.ToLower(name) }

// SetAttribute sets name=value, preserving first-seen insertion order for
// iteration. Marks the element style-dirty: most attributes (class, id,
// style, data-*) can affect which selectors match.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	key := normalizeAttrName(name)
	if _, exists := e.attrs[key]; !exists {
		e.attrOrder = append(e.attrOrder, key)
	}
	e.attrs[key] = value
	if key == "style" {
		e.InlineStyle = style.ParseInlineStyle(value)
	}
	switch key {
	case "disabled", "checked", "required", "value":
		e.SyncAttributeDrivenState()
	}
	e.markStyleDirty()
}

// RemoveAttribute deletes name, if present.
func (e *Element) RemoveAttribute(name string) {
	key := normalizeAttrName(name)
	if _, ok := e.attrs[key]; !ok {
		return
	}
	delete(e.attrs, key)
	for i, k := range e.attrOrder {
		if k == key {
			e.attrOrder = append(e.attrOrder[:i], e.attrOrder[i+1:]...)
			break
		}
	}
	switch key {
	case "disabled", "checked", "required", "value":
		e.SyncAttributeDrivenState()
	}
	e.markStyleDirty()
}

// GetAttribute returns name's value and whether it was set.
func (e *Element) GetAttribute(name string) (string, bool) {
	if e.attrs == nil {
		return "", false
	}
	v, ok := e.attrs[normalizeAttrName(name)]
	return v, ok
}

// AttributeNames returns attribute names in first-seen insertion order.
func (e *Element) AttributeNames() []string {
	out := make([]string, len(e.attrOrder))
	copy(out, e.attrOrder)
	return out
}

func (e *Element) markStyleDirty() {
	e.StyleDirty = true
	for c := e.parent; c != nil; c = c.parent {
		if c.StyleDirty {
			break
		}
		c.StyleDirty = true
	}
}

// SetState flips one dynamic state bit (hover, focus, ...) and marks the
// element style-dirty, since state pseudo-classes can change which rules
// match it.
func (e *Element) SetState(s PseudoState, on bool) {
	if e.states[s] == on {
		return
	}
	e.states[s] = on
	e.markStyleDirty()
}

func (e *Element) State(s PseudoState) bool { return e.states[s] }

func (e *Element) ParentElement() *Element { return e.parent }
func (e *Element) Children() []*Element    { return e.children }
func (e *Element) Text() string            { return e.text }
func (e *Element) SetText(text string)     { e.text = text; e.LayoutDirty = true }

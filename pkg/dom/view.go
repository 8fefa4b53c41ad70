package dom

import (
	"strings"

	"wisp/pkg/layout"
	"wisp/pkg/style"
)

// This file implements style.ElementView and layout.Node structurally —
// Element never imports either package's interface type, it just happens
// to satisfy them, keeping pkg/style and pkg/layout decoupled from pkg/dom.

var (
	_ style.ElementView = (*Element)(nil)
	_ layout.Node       = (*Element)(nil)
)

func (e *Element) Tag() string { return e.tag }

func (e *Element) ID() string {
	v, _ := e.GetAttribute("id")
	return v
}

func (e *Element) ClassList() []string {
	v, ok := e.GetAttribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

func (e *Element) Attr(name string) (string, bool) { return e.GetAttribute(name) }

func (e *Element) Parent() style.ElementView {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) PrevSibling() style.ElementView {
	if e.parent == nil {
		return nil
	}
	idx := e.IndexInParent()
	for i := idx - 1; i >= 0; i-- {
		if !e.parent.children[i].IsTextNode {
			return e.parent.children[i]
		}
	}
	return nil
}

func (e *Element) elementSiblings() []*Element {
	if e.parent == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.parent.children {
		if !c.IsTextNode {
			out = append(out, c)
		}
	}
	return out
}

func (e *Element) IndexAmongSiblings() int {
	siblings := e.elementSiblings()
	for i, s := range siblings {
		if s == e {
			return i + 1
		}
	}
	return 1
}

func (e *Element) IndexAmongSiblingsOfType() int {
	n := 0
	for _, s := range e.elementSiblings() {
		if s.tag == e.tag {
			n++
			if s == e {
				return n
			}
		}
	}
	return 1
}

func (e *Element) SiblingCount() int { return len(e.elementSiblings()) }

func (e *Element) SiblingCountOfType() int {
	n := 0
	for _, s := range e.elementSiblings() {
		if s.tag == e.tag {
			n++
		}
	}
	return n
}

func (e *Element) IsEmpty() bool {
	for _, c := range e.children {
		if c.IsTextNode && strings.TrimSpace(c.text) != "" {
			return false
		}
		if !c.IsTextNode {
			return false
		}
	}
	return true
}

func (e *Element) IsRoot() bool { return e.parent == nil }

func (e *Element) Lang() string {
	for el := e; el != nil; el = el.parent {
		if v, ok := el.GetAttribute("lang"); ok {
			return v
		}
	}
	return ""
}

func (e *Element) PseudoState(name string) bool {
	switch name {
	case "enabled":
		return !e.states[StateDisabled]
	}
	if s, ok := pseudoStateNames[name]; ok {
		return e.states[s]
	}
	return false
}

// --- layout.Node ---

func (e *Element) IsText() bool { return e.IsTextNode }

func (e *Element) ComputedStyle() *style.ComputedStyle { return e.Computed }

func (e *Element) NodeChildren() []layout.Node {
	out := make([]layout.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

package dom

import "wisp/pkg/htmlsrc"

// --- tree mutation, grounded on pkg/html/dom.go's AddChild/RemoveChild/InsertBefore ---

// AppendChild adds child as e's last child, reparenting it if it already
// belonged to another element.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.LayoutDirty = true
}

// RemoveChild detaches child from e's children, returning it. Returns nil
// if child is not one of e's children.
func (e *Element) RemoveChild(child *Element) *Element {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.LayoutDirty = true
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild immediately before refChild among e's
// children, or appends it if refChild is nil or not found.
func (e *Element) InsertBefore(newChild, refChild *Element) *Element {
	if newChild.parent != nil {
		newChild.parent.RemoveChild(newChild)
	}
	if refChild != nil {
		for i, c := range e.children {
			if c == refChild {
				e.children = append(e.children, nil)
				copy(e.children[i+1:], e.children[i:])
				e.children[i] = newChild
				newChild.parent = e
				e.LayoutDirty = true
				return newChild
			}
		}
	}
	e.AppendChild(newChild)
	return newChild
}

// Contains reports whether other is e itself or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == other {
		return true
	}
	for _, c := range e.children {
		if c.Contains(other) {
			return true
		}
	}
	return false
}

// IndexInParent returns e's index among its parent's children, or -1 if
// e has no parent.
func (e *Element) IndexInParent() int {
	if e.parent == nil {
		return -1
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return -1
}

// BuildTree converts a parsed htmlsrc.RawNode tree into the owned *Element
// tree, per spec.md section 6 ("pkg/dom.BuildTree converts that into the
// owned *Element tree"). Attribute insertion order is preserved from the
// source document.
func BuildTree(raw *htmlsrc.RawNode) *Element {
	if raw.Type == htmlsrc.RawText {
		return NewTextNode(raw.Text)
	}
	el := NewElement(raw.Tag)
	for _, key := range raw.AttrKeys {
		el.SetAttribute(key, raw.Attrs[key])
	}
	for _, child := range raw.Children {
		el.AppendChild(BuildTree(child))
	}
	return el
}

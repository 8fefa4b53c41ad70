package dom

import (
	"wisp/pkg/layout"
	"wisp/pkg/style"
)

// IterAncestors walks from e's parent up to the root, inclusive.
func (e *Element) IterAncestors() []*Element {
	var out []*Element
	for p := e.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// IterDescendants walks e's subtree in document (pre-)order, not including
// e itself.
func (e *Element) IterDescendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(e)
	return out
}

// IterSiblings returns e's siblings (text nodes included), in document
// order, not including e itself.
func (e *Element) IterSiblings() []*Element {
	if e.parent == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.parent.children {
		if c != e {
			out = append(out, c)
		}
	}
	return out
}

// Root returns the topmost ancestor of e (e itself if e has no parent).
func (e *Element) Root() *Element {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Compute recomputes e's fully computed style from its cascaded input and
// its parent's computed style, then recurses into children, per spec.md
// 4.7's "compute()" tree walk. pool interns the result so structurally
// identical computed styles across the tree share one allocation.
func (e *Element) Compute(sheets []style.SourceSheet, vp style.Viewport, pool *style.Pool) {
	e.compute(sheets, vp, pool, nil)
}

func (e *Element) compute(sheets []style.SourceSheet, vp style.Viewport, pool *style.Pool, parentComputed *style.ComputedStyle) {
	if e.IsTextNode {
		e.Computed = parentComputed
		e.StyleDirty = false
		return
	}
	if e.StyleDirty || e.Computed == nil {
		raw := style.Cascade(e.tag, sheets, e, e.InlineStyle, vp)
		e.ExternalCascaded = raw
		next := style.Compute(e.tag, raw, parentComputed, nil)
		if pool != nil {
			if e.Computed != nil {
				pool.Release(e.Computed)
			}
			next = pool.Intern(next)
		}
		e.Computed = next
		e.StyleDirty = false
	}
	for _, c := range e.children {
		c.compute(sheets, vp, pool, e.Computed)
	}
}

// Layout lays out e (which must already have a fully computed style, and
// be the root of the tree being laid out) into a box sized to
// viewportWidth/viewportHeight, per spec.md 4.7's "layout(width)".
func (e *Element) Layout(viewportWidth, viewportHeight float64, fm layout.FontMetrics) *layout.Box {
	root := layout.LayoutRoot(e, viewportWidth, viewportHeight, fm)
	assignBoxes(root)
	e.clearLayoutDirty()
	return root
}

// assignBoxes walks a laid-out box tree and stores each box on the
// *Element it was laid out for (skipping synthetic anonymous-wrapper
// boxes, which carry no Source).
func assignBoxes(b *layout.Box) {
	if el, ok := b.Source.(*Element); ok {
		el.Box = b
	}
	for _, c := range b.Children {
		assignBoxes(c)
	}
}

func (e *Element) clearLayoutDirty() {
	e.LayoutDirty = false
	for _, c := range e.children {
		c.clearLayoutDirty()
	}
}

// Collide returns the innermost real element whose laid-out box contains
// the point (x,y) in the root's coordinate system, or nil. Synthetic
// anonymous-block-wrapper boxes the layout engine invents to group runs of
// inline-level siblings carry no Source and are skipped in favor of the
// nearest ancestor box that does.
func (e *Element) Collide(x, y float64) *Element {
	if e.Box == nil {
		return nil
	}
	for hit := layout.Collide(e.Box, x, y); hit != nil; hit = hit.Parent {
		if el, ok := hit.Source.(*Element); ok {
			return el
		}
	}
	return nil
}

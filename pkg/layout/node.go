package layout

import "wisp/pkg/style"

// Node is the structural view layout needs of a styled element tree. It is
// defined here rather than imported from pkg/dom so pkg/dom (which will
// satisfy it) can in turn depend on pkg/style and pkg/layout without a
// cycle — the same ElementView pattern pkg/style uses to stay decoupled
// from pkg/dom.
type Node interface {
	Tag() string
	IsText() bool
	Text() string
	ComputedStyle() *style.ComputedStyle
	NodeChildren() []Node
}

// FontMetrics is the text-measurement collaborator layout needs to turn
// words into positioned inline items. pkg/text provides the concrete
// implementation; layout only depends on this narrow interface.
type FontMetrics interface {
	MeasureWord(word string, cs *style.ComputedStyle) float64
	LineHeight(cs *style.ComputedStyle) float64
	SpaceWidth(cs *style.ComputedStyle) float64
}

func anyChildIsBlock(n Node) bool {
	for _, c := range n.NodeChildren() {
		if c.IsText() {
			continue
		}
		cs := c.ComputedStyle()
		if cs == nil {
			continue
		}
		if kw, ok := cs.Get("display").(style.Keyword); ok && kw == "block" {
			return true
		}
	}
	return false
}

func isOutOfFlow(cs *style.ComputedStyle) bool {
	kw, ok := cs.Get("position").(style.Keyword)
	return ok && (kw == "absolute" || kw == "fixed")
}

func displayOf(cs *style.ComputedStyle) style.Keyword {
	if cs == nil {
		return "block"
	}
	kw, ok := cs.Get("display").(style.Keyword)
	if !ok {
		return "block"
	}
	return kw
}

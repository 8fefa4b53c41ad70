package layout

import "wisp/pkg/style"

// collapseGap computes the shared vertical gap between two adjoining
// in-flow margins. Margins are assumed non-negative here (the acceptor
// allows negative lengths, but this spec's collapsing model does not
// special-case them): the gap two adjoining siblings contribute is the
// smaller of the two, not their sum — so abutting 10px and 20px margins
// leave a 10px gap, never 30px. A parent's own top/bottom margin is not
// collapsed with its first/last child's margin.
func collapseGap(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// isEmptyBox reports whether a block box has no content height and no
// border/padding separating its own top and bottom margins, meaning those
// two margins collapse through into one before touching siblings.
func isEmptyBox(b *Box) bool {
	if b.Height > 0 || b.Height == AutoHeight {
		return false
	}
	return b.Border.Top == 0 && b.Border.Bottom == 0 && b.Padding.Top == 0 && b.Padding.Bottom == 0 && len(b.Children) == 0
}

func ownMargin(b *Box) float64 {
	if isEmptyBox(b) {
		return collapseGap(b.Margin.Top, b.Margin.Bottom)
	}
	return b.Margin.Top
}

// anonWrapper groups a run of inline-level siblings (text plus inline
// elements) that sit next to a block-level sibling into one anonymous
// block box, per spec.md 4.6's "inline children grouped into implicit
// block wrappers" rule. It inherits the generating parent's computed
// style, same as an anonymous box in CSS2.1 §9.2.1.1.
type anonWrapper struct {
	cs       *style.ComputedStyle
	children []Node
}

func (a *anonWrapper) Tag() string                        { return "" }
func (a *anonWrapper) IsText() bool                        { return false }
func (a *anonWrapper) Text() string                        { return "" }
func (a *anonWrapper) ComputedStyle() *style.ComputedStyle { return a.cs }
func (a *anonWrapper) NodeChildren() []Node                { return a.children }
func (a *anonWrapper) synthetic()                          {}

// syntheticNode is implemented by Node values layout invents itself (like
// anonWrapper) that have no element identity a caller could correlate a
// resulting Box back to.
type syntheticNode interface{ synthetic() }

func newAnonWrapper(parent *style.ComputedStyle, children []Node) *anonWrapper {
	return &anonWrapper{
		cs:       style.Compute("div", style.RawStyle{"display": {Source: "block"}}, parent, nil),
		children: children,
	}
}

func isInlineLevel(child Node) bool {
	if child.IsText() {
		return true
	}
	cs := child.ComputedStyle()
	return displayOf(cs) != "block"
}

// LayoutBlockChildren lays out n's children as block boxes stacked top to
// bottom inside container, per spec.md 4.6's block-layout algorithm: in-flow
// children accumulate a cursor with margins collapsed between adjoining
// edges, out-of-flow children are positioned from inset afterward. Runs of
// inline-level siblings are grouped into anonymous block wrappers so the
// whole child list can be walked uniformly as block boxes. It returns the
// content height to use when container's own height is auto.
func LayoutBlockChildren(n Node, container *Box, fm FontMetrics, parentW, parentH float64) float64 {
	contentX := container.Border.Left + container.Padding.Left
	contentY := container.Border.Top + container.Padding.Top
	contentW := container.Width
	cursor := contentY
	prevMarginBottom := 0.0
	havePrev := false

	place := func(childBox *Box) {
		top := ownMargin(childBox)
		gap := top
		if havePrev {
			gap = collapseGap(prevMarginBottom, top)
		}
		childBox.X = contentX + childBox.Margin.Left
		childBox.Y = cursor + gap
		cursor = childBox.Y + childBox.BorderBoxHeight()

		container.Children = append(container.Children, childBox)
		childBox.Parent = container

		prevMarginBottom = childBox.Margin.Bottom
		if isEmptyBox(childBox) {
			prevMarginBottom = collapseGap(childBox.Margin.Top, childBox.Margin.Bottom)
		}
		havePrev = true
	}

	var outOfFlow []Node
	var pendingInline []Node

	flushInlineRun := func() {
		if len(pendingInline) == 0 {
			return
		}
		wrapper := newAnonWrapper(n.ComputedStyle(), pendingInline)
		pendingInline = nil
		place(LayoutElement(wrapper, contentW, contentW, parentH, fm))
	}

	for _, child := range n.NodeChildren() {
		if !child.IsText() {
			cs := child.ComputedStyle()
			if displayOf(cs) == "none" {
				continue
			}
			if isOutOfFlow(cs) {
				outOfFlow = append(outOfFlow, child)
				continue
			}
		}
		if isInlineLevel(child) {
			pendingInline = append(pendingInline, child)
			continue
		}
		flushInlineRun()
		place(LayoutElement(child, contentW, contentW, parentH, fm))
	}
	flushInlineRun()

	contentHeight := cursor - contentY

	for _, child := range outOfFlow {
		cs := child.ComputedStyle()
		positionOutOfFlow(child, cs, container, fm, parentW, parentH)
	}

	return contentHeight
}

func positionOutOfFlow(n Node, cs *style.ComputedStyle, container *Box, fm FontMetrics, parentW, parentH float64) {
	childBox := LayoutElement(n, container.Width, container.Width, parentH, fm)

	ctx := style.ResolveContext{PercentBasis: parentW}
	ctxH := style.ResolveContext{PercentBasis: parentH}

	left := cs.Get("left")
	right := cs.Get("right")
	top := cs.Get("top")
	bottom := cs.Get("bottom")

	var x, y float64
	switch {
	case !style.IsAuto(left):
		x = style.ResolveLength(left, ctx)
	case !style.IsAuto(right):
		x = parentW - style.ResolveLength(right, ctx) - childBox.OuterWidth()
	default:
		x = 0
	}
	switch {
	case !style.IsAuto(top):
		y = style.ResolveLength(top, ctxH)
	case !style.IsAuto(bottom):
		y = parentH - style.ResolveLength(bottom, ctxH) - childBox.OuterHeight()
	default:
		y = 0
	}

	childBox.X = x + childBox.Margin.Left
	childBox.Y = y + childBox.Margin.Top
	childBox.Parent = container
	container.Children = append(container.Children, childBox)
}

// Package layout implements the box model and block/inline flow layout:
// turning a styled element tree into boxes positioned in a pixel-addressable
// coordinate system.
package layout

import "wisp/pkg/style"

// AutoHeight is the sentinel an as-yet-unresolved auto height box carries
// until its children have been laid out and SetHeight is invoked.
const AutoHeight = -1

// BoxEdge holds one value per box edge in CSS's top/right/bottom/left order.
type BoxEdge struct {
	Top, Right, Bottom, Left float64
}

// Box is one element's laid-out geometry: a border-box origin (X/Y, the
// top-left corner inside the margin), a content-box size, and its
// margin/border/padding edges, in its containing block's local
// coordinate system (layout never produces page-absolute coordinates —
// that translation is the painter's job).
type Box struct {
	X, Y          float64
	Width, Height float64 // content-box size; Height may be AutoHeight mid-layout
	Margin        BoxEdge
	Padding       BoxEdge
	Border        BoxEdge

	Style    *style.ComputedStyle
	Children []*Box
	Parent   *Box

	// Source is the Node this box was laid out for. It is nil for boxes
	// display:none produced and for boxes of synthetic anonymous-block
	// wrappers, which have no element identity of their own.
	Source Node

	Position style.Value // style.Keyword: static/relative/absolute/fixed/sticky

	TextItems []TextItem // positioned words, for inline content this box laid out directly
}

// TextItem is one word positioned by inline layout, in the owning box's
// local coordinate system.
type TextItem struct {
	Word   string
	X, Y   float64
	Width  float64
	Height float64
}

// OuterWidth returns the full horizontal extent: margin + border + padding
// + content.
func (b *Box) OuterWidth() float64 {
	return b.Margin.Left + b.Border.Left + b.Padding.Left + b.Width + b.Padding.Right + b.Border.Right + b.Margin.Right
}

// OuterHeight returns the full vertical extent.
func (b *Box) OuterHeight() float64 {
	return b.Margin.Top + b.Border.Top + b.Padding.Top + b.Height + b.Padding.Bottom + b.Border.Bottom + b.Margin.Bottom
}

// BorderBoxWidth returns border + padding + content, excluding margin.
func (b *Box) BorderBoxWidth() float64 {
	return b.Border.Left + b.Padding.Left + b.Width + b.Padding.Right + b.Border.Right
}

// BorderBoxHeight returns border + padding + content, excluding margin.
func (b *Box) BorderBoxHeight() float64 {
	return b.Border.Top + b.Padding.Top + b.Height + b.Padding.Bottom + b.Border.Bottom
}

func isBorderBox(cs *style.ComputedStyle) bool {
	kw, ok := cs.Get("box-sizing").(style.Keyword)
	return ok && kw == "border-box"
}

func resolveEdge(cs *style.ComputedStyle, prefix string, basis float64) BoxEdge {
	ctx := style.ResolveContext{PercentBasis: basis}
	resolve := func(prop string) float64 {
		v := cs.Get(prop)
		if v == nil || style.IsAuto(v) {
			return 0
		}
		return style.ResolveLength(v, ctx)
	}
	return BoxEdge{
		Top:    resolve(prefix + "-top" + edgeSuffix(prefix)),
		Right:  resolve(prefix + "-right" + edgeSuffix(prefix)),
		Bottom: resolve(prefix + "-bottom" + edgeSuffix(prefix)),
		Left:   resolve(prefix + "-left" + edgeSuffix(prefix)),
	}
}

func edgeSuffix(prefix string) string {
	if prefix == "border" {
		return "-width"
	}
	return ""
}

// SetHeight is the callback MakeBox returns when a box's height started
// out auto: the block-layout pass invokes it once the box's children have
// been positioned and their total content extent is known.
type SetHeight func(contentHeight float64)

// MakeBox resolves an element's box geometry against its parent's content
// box, per the box-model algorithm: percentages in margin/padding resolve
// against parentW, height percentages resolve against parentH, and the
// horizontal margin auto/auto, auto/x, x/auto, x/x cases are solved for a
// known outerWidth. If the style's height is auto, the returned box's
// Height is left at AutoHeight and the returned SetHeight must be invoked
// once the caller knows the content height.
func MakeBox(cs *style.ComputedStyle, outerWidth, parentW, parentH float64) (*Box, SetHeight) {
	b := &Box{Style: cs, Position: cs.Get("position")}

	b.Padding = resolveEdge(cs, "padding", parentW)
	b.Border = resolveEdge(cs, "border", parentW)

	marginCtx := style.ResolveContext{PercentBasis: parentW}
	mTop := resolveAutoAware(cs.Get("margin-top"), marginCtx)
	mRight := resolveAutoAware(cs.Get("margin-right"), marginCtx)
	mBottom := resolveAutoAware(cs.Get("margin-bottom"), marginCtx)
	mLeft := resolveAutoAware(cs.Get("margin-left"), marginCtx)

	nonContent := b.Padding.Left + b.Padding.Right + b.Border.Left + b.Border.Right
	available := outerWidth - nonContent

	widthVal := cs.Get("width")
	var contentWidth float64
	widthAuto := style.IsAuto(widthVal)
	if !widthAuto {
		contentWidth = style.ResolveLength(widthVal, style.ResolveContext{PercentBasis: parentW})
		if isBorderBox(cs) {
			contentWidth -= b.Border.Left + b.Border.Right + b.Padding.Left + b.Padding.Right
			if contentWidth < 0 {
				contentWidth = 0
			}
		}
	}

	switch {
	case widthAuto && mLeft.auto && mRight.auto:
		mLeft.val, mRight.val = 0, 0
		contentWidth = available
	case widthAuto:
		l, r := zeroIfAuto(mLeft), zeroIfAuto(mRight)
		contentWidth = available - l - r
		mLeft.val, mRight.val = l, r
	case mLeft.auto && mRight.auto:
		remaining := available - contentWidth
		if remaining < 0 {
			remaining = 0
		}
		mLeft.val = remaining / 2
		mRight.val = remaining / 2
	case mLeft.auto:
		mRight.val = zeroIfAuto(mRight)
		mLeft.val = available - contentWidth - mRight.val
	case mRight.auto:
		mLeft.val = zeroIfAuto(mLeft)
		mRight.val = available - contentWidth - mLeft.val
	default:
		// both resolved: taken as-is, slack (if any) is simply unaccounted
		// for, matching the box-model algorithm's "both resolved: take as-is".
	}
	if contentWidth < 0 {
		contentWidth = 0
	}

	b.Margin = BoxEdge{Top: mTop.val, Right: mRight.val, Bottom: mBottom.val, Left: mLeft.val}
	b.Width = contentWidth

	heightVal := cs.Get("height")
	if style.IsAuto(heightVal) {
		b.Height = AutoHeight
		return b, func(contentHeight float64) { b.Height = contentHeight }
	}
	h := style.ResolveLength(heightVal, style.ResolveContext{PercentBasis: parentH})
	if isBorderBox(cs) {
		h -= b.Border.Top + b.Border.Bottom + b.Padding.Top + b.Padding.Bottom
		if h < 0 {
			h = 0
		}
	}
	b.Height = h
	return b, func(float64) {}
}

type autoAwareValue struct {
	val  float64
	auto bool
}

func resolveAutoAware(v style.Value, ctx style.ResolveContext) autoAwareValue {
	if v == nil || style.IsAuto(v) {
		return autoAwareValue{auto: true}
	}
	return autoAwareValue{val: style.ResolveLength(v, ctx)}
}

func zeroIfAuto(v autoAwareValue) float64 {
	if v.auto {
		return 0
	}
	return v.val
}

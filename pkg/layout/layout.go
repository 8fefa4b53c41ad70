package layout

import "wisp/pkg/style"

// LayoutElement lays out n as a child of a block or inline formatting
// context, given the outer width it must fit into and its parent's content
// width and height (the percentage bases). The returned box's X/Y are left
// for the caller to set. It implements spec.md
// 4.6's top-level dispatch: display:none produces an empty zero-size box;
// otherwise the children are classified as block or inline and handed to
// the matching layout routine.
func LayoutElement(n Node, outerWidth, parentContentW, parentContentH float64, fm FontMetrics) *Box {
	cs := n.ComputedStyle()
	if displayOf(cs) == "none" {
		return &Box{Style: cs, Position: style.Keyword("static")}
	}

	box, setHeight := MakeBox(cs, outerWidth, parentContentW, parentContentH)
	if _, synthetic := n.(syntheticNode); !synthetic {
		box.Source = n
	}

	if anyChildIsBlock(n) {
		contentHeight := LayoutBlockChildren(n, box, fm, box.Width, parentContentH)
		if box.Height == AutoHeight {
			setHeight(contentHeight)
		}
	} else {
		contentHeight := LayoutInline(n, box, fm, box.Width)
		if box.Height == AutoHeight {
			setHeight(contentHeight)
		}
	}

	return box
}

// LayoutRoot lays out the document's root element against the viewport,
// the entry point spec.md 4.7 calls "layout(width)".
func LayoutRoot(n Node, viewportWidth, viewportHeight float64, fm FontMetrics) *Box {
	box := LayoutElement(n, viewportWidth, viewportWidth, viewportHeight, fm)
	box.X, box.Y = 0, 0
	return box
}

// Collide performs the depth-first, children-first hit test spec.md 4.7
// describes: the innermost box whose border box contains (x,y), checking
// children first so overlapping descendants win over their ancestor. Each
// Box's X/Y are local to its own parent's border-box origin, so the walk
// accumulates an absolute offset as it descends.
func Collide(root *Box, x, y float64) *Box {
	return collideAt(root, x, y, 0, 0)
}

func collideAt(b *Box, x, y, offsetX, offsetY float64) *Box {
	absX := offsetX + b.X
	absY := offsetY + b.Y
	for i := len(b.Children) - 1; i >= 0; i-- {
		if hit := collideAt(b.Children[i], x, y, absX, absY); hit != nil {
			return hit
		}
	}
	right := absX + b.BorderBoxWidth()
	bottom := absY + b.BorderBoxHeight()
	if x >= absX && x < right && y >= absY && y < bottom {
		return b
	}
	return nil
}

package layout

import (
	"unicode"

	"wisp/pkg/style"
)

// inlineItem is one atomic unit of inline content: a word (with the
// whitespace that followed it in the source, if any) or a whole inline
// element box.
type inlineItem struct {
	word       string
	trailingWS bool
	box        *Box // non-nil for an inline-element item; nil for a word
	width      float64
	height     float64
}

// collectInlineItems flattens n's children into words and inline-element
// items, per spec.md 4.6: text splits on whitespace (trailing-whitespace
// flag preserved), nested inline elements flatten recursively.
func collectInlineItems(n Node, fm FontMetrics, cs *style.ComputedStyle, availableWidth float64) []inlineItem {
	var items []inlineItem
	for _, child := range n.NodeChildren() {
		if child.IsText() {
			items = append(items, wordsOf(child.Text(), fm, cs)...)
			continue
		}
		childCS := child.ComputedStyle()
		if displayOf(childCS) == "none" {
			continue
		}
		if displayOf(childCS) == "inline" {
			items = append(items, collectInlineItems(child, fm, childCS, availableWidth)...)
			continue
		}
		// inline-block or atomic replaced content: laid out as one opaque box,
		// its percentage basis the same line's available width.
		box := LayoutElement(child, availableWidth, availableWidth, 0, fm)
		items = append(items, inlineItem{box: box, width: box.OuterWidth(), height: box.OuterHeight()})
	}
	return items
}

func wordsOf(text string, fm FontMetrics, cs *style.ComputedStyle) []inlineItem {
	var items []inlineItem
	fields := splitKeepingTrailingSpace(text)
	lineHeight := fm.LineHeight(cs)
	for _, f := range fields {
		items = append(items, inlineItem{
			word:       f.word,
			trailingWS: f.trailingWS,
			width:      fm.MeasureWord(f.word, cs),
			height:     lineHeight,
		})
	}
	return items
}

type wordField struct {
	word       string
	trailingWS bool
}

func splitKeepingTrailingSpace(text string) []wordField {
	var out []wordField
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		if i == start {
			break
		}
		word := string(runes[start:i])
		trailing := i < len(runes) && unicode.IsSpace(runes[i])
		out = append(out, wordField{word: word, trailingWS: trailing})
	}
	return out
}

type inlineLine struct {
	items  []inlineItem
	height float64
	width  float64 // sum of item widths + inter-item spacing actually used
}

// LayoutInline performs greedy line-breaking of n's flattened inline
// content into lines no wider than availableWidth, then applies
// text-align within each line, and returns the total content height.
func LayoutInline(n Node, container *Box, fm FontMetrics, availableWidth float64) float64 {
	cs := n.ComputedStyle()
	items := collectInlineItems(n, fm, cs, availableWidth)
	spaceWidth := fm.SpaceWidth(cs)

	var lines []inlineLine
	var cur []inlineItem
	curWidth := 0.0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		h := 0.0
		for _, it := range cur {
			if it.height > h {
				h = it.height
			}
		}
		w := curWidth
		if cur[len(cur)-1].trailingWS {
			w -= spaceWidth
		}
		lines = append(lines, inlineLine{items: cur, height: h, width: w})
		cur = nil
		curWidth = 0
	}

	for _, it := range items {
		itemSpace := 0.0
		if it.trailingWS {
			itemSpace = spaceWidth
		}
		projected := curWidth + it.width
		if len(cur) > 0 && curWidth+it.width > availableWidth {
			flush()
			projected = it.width
		}
		cur = append(cur, it)
		curWidth = projected + itemSpace
	}
	flush()

	textAlign, _ := cs.Get("text-align").(style.Keyword)
	contentX := container.Border.Left + container.Padding.Left
	y := container.Border.Top + container.Padding.Top
	for _, line := range lines {
		placeLine(line, textAlign, contentX, y, availableWidth, spaceWidth, container)
		y += line.height
	}
	return y - (container.Border.Top + container.Padding.Top)
}

func placeLine(line inlineLine, align style.Keyword, startX, y, availableWidth, spaceWidth float64, container *Box) {
	n := len(line.items)
	if n == 0 {
		return
	}
	naturalWidth := line.width
	remainder := availableWidth - naturalWidth
	if remainder < 0 {
		remainder = 0
	}

	x := startX
	extraPerGap := 0.0
	switch align {
	case "right":
		x = startX + remainder
	case "center":
		x = startX + remainder/2
	case "justify":
		gaps := n - 1
		if gaps > 0 {
			extraPerGap = remainder / float64(gaps)
		}
	}

	for i, it := range line.items {
		if it.box != nil {
			it.box.X = x
			it.box.Y = y
			container.Children = append(container.Children, it.box)
			it.box.Parent = container
		} else {
			container.TextItems = append(container.TextItems, TextItem{
				Word: it.word, X: x, Y: y, Width: it.width, Height: it.height,
			})
		}
		x += it.width
		if it.trailingWS {
			x += spaceWidth
		}
		if align == "justify" && i < n-1 {
			x += extraPerGap
		}
	}
}

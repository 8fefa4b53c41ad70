package layout

import "wisp/pkg/style"

// fakeNode is a minimal hand-written Node used across this package's
// tests, in place of a mock framework.
type fakeNode struct {
	tag      string
	text     string
	isText   bool
	cs       *style.ComputedStyle
	children []Node
}

func (n *fakeNode) Tag() string                        { return n.tag }
func (n *fakeNode) IsText() bool                        { return n.isText }
func (n *fakeNode) Text() string                        { return n.text }
func (n *fakeNode) ComputedStyle() *style.ComputedStyle { return n.cs }
func (n *fakeNode) NodeChildren() []Node                { return n.children }

func textNode(text string) *fakeNode {
	return &fakeNode{isText: true, text: text}
}

func styled(tag string, raw style.RawStyle, parent *style.ComputedStyle, children ...Node) *fakeNode {
	return &fakeNode{tag: tag, cs: style.Compute(tag, raw, parent, nil), children: children}
}

// fakeMetrics is a deterministic FontMetrics stand-in: each character is
// 10px wide, lines are 20px tall, and a space is 5px wide, regardless of
// the style passed in — enough to exercise line-breaking arithmetic
// without depending on pkg/text or any real font.
type fakeMetrics struct{}

func (fakeMetrics) MeasureWord(word string, cs *style.ComputedStyle) float64 {
	return float64(len(word)) * 10
}
func (fakeMetrics) LineHeight(cs *style.ComputedStyle) float64 { return 20 }
func (fakeMetrics) SpaceWidth(cs *style.ComputedStyle) float64 { return 5 }

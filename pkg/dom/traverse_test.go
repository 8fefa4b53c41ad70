package dom

import (
	"testing"

	"wisp/pkg/style"
)

type fakeMetrics struct{}

func (fakeMetrics) MeasureWord(word string, cs *style.ComputedStyle) float64 { return float64(len(word)) * 10 }
func (fakeMetrics) LineHeight(cs *style.ComputedStyle) float64               { return 20 }
func (fakeMetrics) SpaceWidth(cs *style.ComputedStyle) float64               { return 5 }

func TestIterAncestorsDescendantsSiblings(t *testing.T) {
	root := NewElement("html")
	body := NewElement("body")
	p := NewElement("p")
	span := NewElement("span")
	root.AppendChild(body)
	body.AppendChild(p)
	body.AppendChild(span)

	anc := span.IterAncestors()
	if len(anc) != 2 || anc[0] != body || anc[1] != root {
		t.Fatalf("expected [body, html], got %v", anc)
	}

	desc := root.IterDescendants()
	if len(desc) != 3 {
		t.Fatalf("expected 3 descendants, got %d", len(desc))
	}

	sibs := p.IterSiblings()
	if len(sibs) != 1 || sibs[0] != span {
		t.Fatalf("expected [span], got %v", sibs)
	}
}

func TestComputeAssignsAndInheritsStyle(t *testing.T) {
	root := NewElement("html")
	root.SetAttribute("style", "color: red;")
	child := NewElement("p")
	root.AppendChild(child)

	pool := style.NewPool()
	root.Compute(nil, style.Viewport{Width: 800, Height: 600}, pool)

	if root.Computed == nil || child.Computed == nil {
		t.Fatalf("expected both elements to get a computed style")
	}
	if got := child.Computed.Get("color"); got == nil {
		t.Fatalf("expected color to inherit onto child")
	}
	if root.StyleDirty || child.StyleDirty {
		t.Errorf("expected style-dirty cleared after Compute")
	}
}

func TestLayoutAssignsBoxesAndClearsLayoutDirty(t *testing.T) {
	root := NewElement("html")
	body := NewElement("body")
	root.AppendChild(body)

	pool := style.NewPool()
	root.Compute(nil, style.Viewport{Width: 200, Height: 200}, pool)
	root.Layout(200, 200, fakeMetrics{})

	if root.Box == nil {
		t.Fatalf("expected root.Box to be set")
	}
	if body.Box == nil {
		t.Fatalf("expected body.Box to be assigned from the laid-out tree")
	}
	if root.LayoutDirty || body.LayoutDirty {
		t.Errorf("expected layout-dirty cleared after Layout")
	}
}

func TestCollideFindsRealElementNotSyntheticWrapper(t *testing.T) {
	root := NewElement("div")
	root.SetAttribute("style", "width: 100px; height: 100px;")
	text := NewTextNode("hi")
	root.AppendChild(text)
	block := NewElement("div")
	block.SetAttribute("style", "display: block; width: 10px; height: 10px;")
	root.AppendChild(block)

	pool := style.NewPool()
	root.Compute(nil, style.Viewport{Width: 200, Height: 200}, pool)
	root.Layout(200, 200, fakeMetrics{})

	hit := root.Collide(block.Box.X+1, block.Box.Y+1)
	if hit != block {
		t.Fatalf("expected to hit the block element, got %+v", hit)
	}
}

package layout

import (
	"testing"

	"wisp/pkg/style"
)

func TestLayoutElementDisplayNoneIsEmpty(t *testing.T) {
	hidden := styled("div", style.RawStyle{"display": {Source: "none"}}, nil)
	box := LayoutElement(hidden, 200, 200, 0, fakeMetrics{})
	if box.Width != 0 || box.Height != 0 || len(box.Children) != 0 {
		t.Errorf("expected empty box for display:none, got %+v", box)
	}
}

func TestLayoutElementDispatchesBlockWhenAnyChildIsBlock(t *testing.T) {
	block1 := styled("div", style.RawStyle{"display": {Source: "block"}, "height": {Source: "10px"}}, nil)
	root := styled("div", style.RawStyle{}, nil, block1)

	box := LayoutElement(root, 200, 200, 0, fakeMetrics{})
	if len(box.Children) != 1 {
		t.Fatalf("expected block child to be laid out as a direct child box, got %d children", len(box.Children))
	}
	if box.Height != 10 {
		t.Errorf("expected auto height to equal the single block child's height, got %v", box.Height)
	}
}

func TestLayoutElementDispatchesInlineWhenNoChildIsBlock(t *testing.T) {
	root := styled("p", style.RawStyle{}, nil, textNode("hi there"))
	box := LayoutElement(root, 200, 200, 0, fakeMetrics{})
	if len(box.TextItems) != 2 {
		t.Errorf("expected inline layout to produce 2 text items, got %d", len(box.TextItems))
	}
}

func TestLayoutRootPositionsAtOrigin(t *testing.T) {
	root := styled("html", style.RawStyle{}, nil)
	box := LayoutRoot(root, 800, 600, fakeMetrics{})
	if box.X != 0 || box.Y != 0 {
		t.Errorf("expected root box at origin, got (%v,%v)", box.X, box.Y)
	}
}

func TestCollideFindsInnermostDescendant(t *testing.T) {
	inner := styled("span", style.RawStyle{"display": {Source: "block"}, "width": {Source: "10px"}, "height": {Source: "10px"}}, nil)
	outer := styled("div", style.RawStyle{"width": {Source: "100px"}, "height": {Source: "100px"}}, nil, inner)

	box := LayoutElement(outer, 200, 200, 0, fakeMetrics{})
	box.X, box.Y = 0, 0

	hit := Collide(box, 5, 5)
	if hit == nil || hit == box {
		t.Fatalf("expected innermost child to be hit, got %+v", hit)
	}
}

func TestCollideMissReturnsNil(t *testing.T) {
	outer := styled("div", style.RawStyle{"width": {Source: "50px"}, "height": {Source: "50px"}}, nil)
	box := LayoutElement(outer, 200, 200, 0, fakeMetrics{})
	if hit := Collide(box, 999, 999); hit != nil {
		t.Errorf("expected miss outside the box to return nil, got %+v", hit)
	}
}

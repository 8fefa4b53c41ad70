package layout

import (
	"testing"

	"wisp/pkg/style"
)

func TestLayoutBlockChildrenStacksAndCollapsesMargins(t *testing.T) {
	child1 := styled("div", style.RawStyle{
		"display":       {Source: "block"},
		"height":        {Source: "20px"},
		"margin-bottom": {Source: "10px"},
	}, nil)
	child2 := styled("div", style.RawStyle{
		"display":    {Source: "block"},
		"height":     {Source: "20px"},
		"margin-top": {Source: "6px"},
	}, nil)
	parentStyle := style.Compute("div", style.RawStyle{}, nil, nil)
	parentNode := &fakeNode{tag: "div", cs: parentStyle, children: []Node{child1, child2}}

	box, setHeight := MakeBox(parentStyle, 300, 300, 0)
	h := LayoutBlockChildren(parentNode, box, fakeMetrics{}, box.Width, 0)
	setHeight(h)

	if len(box.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(box.Children))
	}
	first, second := box.Children[0], box.Children[1]
	if first.Y != 0 {
		t.Errorf("expected first child at y=0, got %v", first.Y)
	}
	// gap between 10px and 6px margins collapses to min(10,6)=6.
	wantSecondY := first.Y + first.BorderBoxHeight() + 6
	if second.Y != wantSecondY {
		t.Errorf("expected collapsed gap of 6, second.Y=%v want %v", second.Y, wantSecondY)
	}
	if box.Height != wantSecondY+second.BorderBoxHeight() {
		t.Errorf("expected parent auto height to equal content cursor, got %v want %v", box.Height, wantSecondY+second.BorderBoxHeight())
	}
}

func TestLayoutBlockChildrenSkipsDisplayNone(t *testing.T) {
	hidden := styled("div", style.RawStyle{"display": {Source: "none"}}, nil)
	visible := styled("div", style.RawStyle{"display": {Source: "block"}, "height": {Source: "10px"}}, nil)
	parentStyle := style.Compute("div", style.RawStyle{}, nil, nil)
	parentNode := &fakeNode{tag: "div", cs: parentStyle, children: []Node{hidden, visible}}

	box, _ := MakeBox(parentStyle, 300, 300, 0)
	LayoutBlockChildren(parentNode, box, fakeMetrics{}, box.Width, 0)

	if len(box.Children) != 1 {
		t.Errorf("expected display:none child to be skipped, got %d children", len(box.Children))
	}
}

func TestLayoutBlockChildrenPositionsOutOfFlowFromInset(t *testing.T) {
	abs := styled("div", style.RawStyle{
		"position": {Source: "absolute"},
		"top":      {Source: "5px"},
		"left":     {Source: "7px"},
		"width":    {Source: "20px"},
		"height":   {Source: "20px"},
	}, nil)
	parentStyle := style.Compute("div", style.RawStyle{}, nil, nil)
	parentNode := &fakeNode{tag: "div", cs: parentStyle, children: []Node{abs}}

	box, _ := MakeBox(parentStyle, 300, 300, 200)
	LayoutBlockChildren(parentNode, box, fakeMetrics{}, box.Width, 200)

	if len(box.Children) != 1 {
		t.Fatalf("expected out-of-flow child to be appended, got %d", len(box.Children))
	}
	child := box.Children[0]
	if child.X != 7 || child.Y != 5 {
		t.Errorf("expected absolute position (7,5), got (%v,%v)", child.X, child.Y)
	}
}

package layout

import (
	"testing"

	"wisp/pkg/style"
)

func TestMakeBoxAutoMarginsCenter(t *testing.T) {
	cs := style.Compute("div", style.RawStyle{
		"width":       {Source: "100px"},
		"margin-left": {Source: "auto"},
		"margin-right": {Source: "auto"},
	}, nil, nil)
	box, _ := MakeBox(cs, 300, 300, 0)
	if box.Width != 100 {
		t.Fatalf("expected content width 100, got %v", box.Width)
	}
	if box.Margin.Left != 100 || box.Margin.Right != 100 {
		t.Errorf("expected auto margins to split remainder evenly, got %+v", box.Margin)
	}
}

func TestMakeBoxAutoWidthFillsAvailable(t *testing.T) {
	cs := style.Compute("div", style.RawStyle{
		"padding-left": {Source: "10px"},
	}, nil, nil)
	box, _ := MakeBox(cs, 200, 200, 0)
	if box.Width != 190 {
		t.Errorf("expected auto width to fill available space minus padding, got %v", box.Width)
	}
}

func TestMakeBoxDeferredHeight(t *testing.T) {
	cs := style.Compute("div", style.RawStyle{}, nil, nil)
	box, setHeight := MakeBox(cs, 100, 100, 0)
	if box.Height != AutoHeight {
		t.Fatalf("expected AutoHeight sentinel before setHeight, got %v", box.Height)
	}
	setHeight(42)
	if box.Height != 42 {
		t.Errorf("expected setHeight to update box height, got %v", box.Height)
	}
}

func TestMakeBoxBorderBoxSizing(t *testing.T) {
	cs := style.Compute("div", style.RawStyle{
		"box-sizing":        {Source: "border-box"},
		"width":             {Source: "100px"},
		"border-left-style": {Source: "solid"},
		"border-left-width": {Source: "10px"},
		"padding-left":      {Source: "5px"},
	}, nil, nil)
	box, _ := MakeBox(cs, 300, 300, 0)
	if box.Width != 85 {
		t.Errorf("expected border-box width to subtract border+padding, got %v", box.Width)
	}
}

func TestOuterWidthSumsAllEdges(t *testing.T) {
	b := &Box{Width: 100, Margin: BoxEdge{Left: 5, Right: 5}, Border: BoxEdge{Left: 1, Right: 1}, Padding: BoxEdge{Left: 2, Right: 2}}
	if got := b.OuterWidth(); got != 116 {
		t.Errorf("expected outer width 116, got %v", got)
	}
}

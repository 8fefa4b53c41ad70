package layout

import (
	"testing"

	"wisp/pkg/style"
)

// With fakeMetrics (10px/char, 5px space), words "aaa"(30) "bb"(20) "c"(10)
// "dd"(20) wrap in spec.md's own worked example (section 4, test vector 5);
// here an 80px line forces the same kind of break.
func TestLayoutInlineWrapsWhenLineFull(t *testing.T) {
	words := textNode("aaa bb c dd")
	parent := styled("p", style.RawStyle{}, nil, words)

	box, _ := MakeBox(parent.cs, 80, 80, 0)
	h := LayoutInline(parent, box, fakeMetrics{}, box.Width)

	// aaa(30)+sp(5)+bb(20)+sp(5)+c(10) = 70 fits in 80; next word dd(20) would
	// bring the running width past 80, so it wraps to a second line.
	var secondLineY float64 = -1
	for _, it := range box.TextItems {
		if it.Word == "dd" {
			secondLineY = it.Y
		}
	}
	if secondLineY <= 0 {
		t.Fatalf("expected 'dd' to wrap to a new line with y>0, got %v", secondLineY)
	}
	if h != secondLineY+20 {
		t.Errorf("expected content height to include the wrapped line, got %v want %v", h, secondLineY+20)
	}
}

func TestLayoutInlineTextAlignCenter(t *testing.T) {
	words := textNode("aaa")
	parent := styled("p", style.RawStyle{"text-align": {Source: "center"}}, nil, words)

	box, _ := MakeBox(parent.cs, 100, 100, 0)
	LayoutInline(parent, box, fakeMetrics{}, box.Width)

	if len(box.TextItems) != 1 {
		t.Fatalf("expected 1 word, got %d", len(box.TextItems))
	}
	// remainder = 100-30 = 70; centered => x = 35.
	if got := box.TextItems[0].X; got != 35 {
		t.Errorf("expected centered x=35, got %v", got)
	}
}

func TestLayoutInlineTextAlignJustifyDistributesGaps(t *testing.T) {
	words := textNode("aaa bb")
	parent := styled("p", style.RawStyle{"text-align": {Source: "justify"}}, nil, words)

	box, _ := MakeBox(parent.cs, 100, 100, 0)
	LayoutInline(parent, box, fakeMetrics{}, box.Width)

	if len(box.TextItems) != 2 {
		t.Fatalf("expected 2 words, got %d", len(box.TextItems))
	}
	// natural width = 30+5+20 = 55; remainder = 45 spread over 1 gap.
	first, second := box.TextItems[0], box.TextItems[1]
	if first.X != 0 {
		t.Errorf("expected first word at x=0, got %v", first.X)
	}
	wantSecondX := first.Width + 5 /*space*/ + 45
	if second.X != wantSecondX {
		t.Errorf("expected justified second word at %v, got %v", wantSecondX, second.X)
	}
}

func TestSplitKeepingTrailingSpace(t *testing.T) {
	fields := splitKeepingTrailingSpace("hello world ")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].word != "hello" || !fields[0].trailingWS {
		t.Errorf("got %+v", fields[0])
	}
	if fields[1].word != "world" || !fields[1].trailingWS {
		t.Errorf("expected trailing space after the final word to still be recorded, got %+v", fields[1])
	}
}

package paint

import (
	"image"
	"testing"

	"wisp/pkg/layout"
	"wisp/pkg/style"
)

type recordingSurface struct {
	fills    []RGBA
	rrects   []RGBA
	lines    int
	clipPush int
	clipPop  int
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c RGBA) { s.fills = append(s.fills, c) }
func (s *recordingSurface) FillRoundedRect(x, y, w, h, radius float64, c RGBA) {
	s.rrects = append(s.rrects, c)
}
func (s *recordingSurface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c RGBA) {}
func (s *recordingSurface) DrawImage(img image.Image, x, y, w, h float64)                   {}
func (s *recordingSurface) DrawLine(x1, y1, x2, y2, lineWidth float64, c RGBA)               { s.lines++ }
func (s *recordingSurface) PushClip(x, y, w, h float64)                                      { s.clipPush++ }
func (s *recordingSurface) PopClip()                                                         { s.clipPop++ }

func computedWith(props map[string]style.RawValue) *style.ComputedStyle {
	raw := style.RawStyle{}
	for k, v := range props {
		raw[k] = v
	}
	return style.Compute("div", raw, nil, nil)
}

func TestPaintBackgroundFillsRect(t *testing.T) {
	cs := computedWith(map[string]style.RawValue{
		"background-color": {Source: "red"},
	})
	box := &layout.Box{Style: cs, Width: 50, Height: 20}

	surf := &recordingSurface{}
	p := &Painter{Surface: surf}
	p.Paint(box, 0, 0)

	if len(surf.fills) != 1 {
		t.Fatalf("expected one fill, got %d", len(surf.fills))
	}
	if surf.fills[0].R != 255 || surf.fills[0].G != 0 {
		t.Errorf("expected red fill, got %+v", surf.fills[0])
	}
}

func TestPaintSkipsTransparentBackground(t *testing.T) {
	cs := computedWith(nil)
	box := &layout.Box{Style: cs, Width: 10, Height: 10}

	surf := &recordingSurface{}
	p := &Painter{Surface: surf}
	p.Paint(box, 0, 0)

	if len(surf.fills) != 0 {
		t.Errorf("expected no fill for the default transparent background, got %d", len(surf.fills))
	}
}

func TestPaintAppliesOverflowClip(t *testing.T) {
	cs := computedWith(map[string]style.RawValue{
		"overflow-x": {Source: "hidden"},
		"overflow-y": {Source: "hidden"},
	})
	box := &layout.Box{Style: cs, Width: 10, Height: 10}

	surf := &recordingSurface{}
	p := &Painter{Surface: surf}
	p.Paint(box, 0, 0)

	if surf.clipPush != 1 || surf.clipPop != 1 {
		t.Errorf("expected one push/pop clip pair, got push=%d pop=%d", surf.clipPush, surf.clipPop)
	}
}

func TestUniformBorderRadiusRequiresAllFourCornersEqual(t *testing.T) {
	cs := computedWith(map[string]style.RawValue{
		"border-top-left-radius":     {Source: "4px"},
		"border-top-right-radius":    {Source: "4px"},
		"border-bottom-right-radius": {Source: "4px"},
		"border-bottom-left-radius":  {Source: "8px"},
	})
	if got := uniformBorderRadius(cs); got != 0 {
		t.Errorf("expected 0 for mismatched corners, got %v", got)
	}
}

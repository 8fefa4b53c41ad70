package paint

import (
	"image"

	"wisp/pkg/layout"
	"wisp/pkg/style"
	"wisp/pkg/text"
)

// ImageLoader resolves a background-image URL to a decoded image, matching
// pkg/images' Cache.Load contract. Kept as a narrow interface here so paint
// never imports pkg/images directly (spec.md section 6's external
// collaborators stay specified only by interface at this boundary).
type ImageLoader interface {
	Load(url string) (image.Image, error)
}

// Painter walks a *layout.Box tree painting each box onto a Surface, in
// document (pre-)order — the simplified stand-in for the teacher's
// z-index-sorted stacking-context paint order, dropped per the Non-goals
// (no stacking contexts, no float-aware paint order in this spec).
type Painter struct {
	Surface Surface
	Fonts   text.FontProvider
	Images  ImageLoader
}

// Paint renders root (and its entire subtree) onto p.Surface. originX/originY
// translate root's local coordinates into the surface's pixel space (e.g.
// to apply a scroll offset).
func (p *Painter) Paint(root *layout.Box, originX, originY float64) {
	p.paintBox(root, originX, originY)
}

func (p *Painter) paintBox(b *layout.Box, offsetX, offsetY float64) {
	if b.Style != nil {
		if kw, ok := b.Style.Get("visibility").(style.Keyword); ok && kw == "hidden" {
			return
		}
	}

	x := offsetX + b.X
	y := offsetY + b.Y

	clipped := p.applyOverflowClip(b, x, y)
	if clipped {
		defer p.Surface.PopClip()
	}

	p.paintBackground(b, x, y)
	p.paintBorder(b, x, y)
	p.paintText(b, x, y)

	for _, c := range b.Children {
		p.paintBox(c, x, y)
	}
}

func (p *Painter) applyOverflowClip(b *layout.Box, x, y float64) bool {
	if b.Style == nil {
		return false
	}
	ox, _ := b.Style.Get("overflow-x").(style.Keyword)
	oy, _ := b.Style.Get("overflow-y").(style.Keyword)
	if ox != "hidden" && oy != "hidden" && ox != "scroll" && oy != "scroll" {
		return false
	}
	p.Surface.PushClip(x, y, b.BorderBoxWidth(), b.BorderBoxHeight())
	return true
}

func colorOf(cs *style.ComputedStyle, prop string) (RGBA, bool) {
	if cs == nil {
		return RGBA{}, false
	}
	c, ok := cs.Get(prop).(style.Color)
	if !ok || c.A == 0 {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

func (p *Painter) paintBackground(b *layout.Box, x, y float64) {
	if b.Style == nil {
		return
	}
	w, h := b.BorderBoxWidth(), b.BorderBoxHeight()
	radius := uniformBorderRadius(b.Style)

	if bg, ok := colorOf(b.Style, "background-color"); ok {
		if radius > 0 {
			p.Surface.FillRoundedRect(x, y, w, h, radius, bg)
		} else {
			p.Surface.FillRect(x, y, w, h, bg)
		}
	}

	p.paintBackgroundImage(b, x, y, w, h)
}

func (p *Painter) paintBackgroundImage(b *layout.Box, x, y, w, h float64) {
	if p.Images == nil {
		return
	}
	bgList, ok := b.Style.Get("background-image").(style.BackgroundImageList)
	if !ok || len(bgList) == 0 {
		return
	}
	for _, layer := range bgList {
		if layer.URL == "" {
			continue
		}
		img, err := p.Images.Load(layer.URL)
		if err != nil || img == nil {
			continue
		}
		bounds := img.Bounds()
		p.Surface.DrawImage(img, x, y, float64(bounds.Dx()), float64(bounds.Dy()))
		_ = h
		_ = w
	}
}

// uniformBorderRadius returns the shared corner radius when all four
// border-*-radius properties agree, matching the teacher's
// drawBorder/drawBoxShadow fast path for the common uniform-radius case;
// mismatched corners paint with square corners rather than approximating
// per-corner ellipses, since Surface's rounded-rect primitive only takes a
// single radius.
func uniformBorderRadius(cs *style.ComputedStyle) float64 {
	corners := []string{
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius",
	}
	var radius float64
	for i, prop := range corners {
		v, ok := cs.Get(prop).(style.Length)
		if !ok {
			return 0
		}
		if i == 0 {
			radius = float64(v)
		} else if float64(v) != radius {
			return 0
		}
	}
	return radius
}

func (p *Painter) paintBorder(b *layout.Box, x, y float64) {
	if b.Border == (layout.BoxEdge{}) || b.Style == nil {
		return
	}
	w, h := b.BorderBoxWidth(), b.BorderBoxHeight()
	radius := uniformBorderRadius(b.Style)

	if radius > 0 && b.Border.Top == b.Border.Right && b.Border.Right == b.Border.Bottom && b.Border.Bottom == b.Border.Left {
		if c, ok := borderSideColor(b.Style, "top"); ok {
			p.Surface.StrokeRoundedRect(x+b.Border.Top/2, y+b.Border.Top/2, w-b.Border.Top, h-b.Border.Top, radius, b.Border.Top, c)
		}
		return
	}

	drawSide := func(present float64, colorProp string, x1, y1, x2, y2 float64) {
		if present <= 0 {
			return
		}
		if c, ok := borderSideColor(b.Style, colorProp); ok {
			p.Surface.DrawLine(x1, y1, x2, y2, present, c)
		}
	}
	drawSide(b.Border.Top, "top", x, y+b.Border.Top/2, x+w, y+b.Border.Top/2)
	drawSide(b.Border.Bottom, "bottom", x, y+h-b.Border.Bottom/2, x+w, y+h-b.Border.Bottom/2)
	drawSide(b.Border.Left, "left", x+b.Border.Left/2, y, x+b.Border.Left/2, y+h)
	drawSide(b.Border.Right, "right", x+w-b.Border.Right/2, y, x+w-b.Border.Right/2, y+h)
}

func borderSideColor(cs *style.ComputedStyle, side string) (RGBA, bool) {
	styleKw, _ := cs.Get("border-" + side + "-style").(style.Keyword)
	if styleKw == "none" || styleKw == "" {
		return RGBA{}, false
	}
	c, ok := cs.Get("border-" + side + "-color").(style.Color)
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

func (p *Painter) paintText(b *layout.Box, x, y float64) {
	if len(b.TextItems) == 0 || b.Style == nil || p.Fonts == nil {
		return
	}
	cs, ok := colorOf(b.Style, "color")
	if !ok {
		cs = RGBA{A: 255}
	}
	key := text.FaceKeyFromStyle(b.Style)
	surf, ok := p.Surface.(*ContextSurface)
	if !ok {
		return
	}
	for _, item := range b.TextItems {
		p.Fonts.Draw(surf.DrawContext(), item.Word, x+item.X, y+item.Y+item.Height, key, style.Color{R: cs.R, G: cs.G, B: cs.B, A: cs.A})
	}
}

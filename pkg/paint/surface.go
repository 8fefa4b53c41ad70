// Package paint implements the surface abstraction external collaborator:
// turning a laid-out *layout.Box tree into pixels. Deliberately narrower
// than the teacher's pkg/render — no z-index stacking contexts, no floats,
// no box-shadow — because this spec's Box tree carries none of the fields
// (ZIndex, IsFirstFragment, fragments) that machinery depends on.
package paint

import (
	"image"

	"github.com/fogleman/gg"
)

// RGBA is a paint-local color to keep this package's public surface free of
// a pkg/style import; Painter converts style.Color values at its boundary.
type RGBA struct {
	R, G, B, A uint8
}

// Surface is the narrow drawing interface a Painter paints onto. It is
// intentionally small — fill, rounded fill, rounded stroke, blit, line,
// clip — the primitives pkg/render/render.go's drawBorder/
// drawBoxShadow/drawBackgroundImage boil down to once stacking-context
// paint order and box-shadow are out of scope.
type Surface interface {
	FillRect(x, y, w, h float64, c RGBA)
	FillRoundedRect(x, y, w, h, radius float64, c RGBA)
	StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c RGBA)
	DrawImage(img image.Image, x, y, w, h float64)
	DrawLine(x1, y1, x2, y2, lineWidth float64, c RGBA)
	PushClip(x, y, w, h float64)
	PopClip()
}

// ContextSurface implements Surface over a gg.Context backed by an
// image.RGBA, the concrete pairing spec.md section 6 names explicitly.
type ContextSurface struct {
	dc *gg.Context
}

// NewContextSurface allocates a width x height RGBA canvas.
func NewContextSurface(width, height int) *ContextSurface {
	return &ContextSurface{dc: gg.NewContext(width, height)}
}

// NewContextSurfaceForImage paints onto an existing image.RGBA, for callers
// (like pkg/resource's Renderer) that own the target buffer already.
func NewContextSurfaceForImage(target *image.RGBA) *ContextSurface {
	return &ContextSurface{dc: gg.NewContextForRGBA(target)}
}

// Image returns the underlying canvas.
func (s *ContextSurface) Image() image.Image { return s.dc.Image() }

func setColor(dc *gg.Context, c RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

func (s *ContextSurface) FillRect(x, y, w, h float64, c RGBA) {
	setColor(s.dc, c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ContextSurface) FillRoundedRect(x, y, w, h, radius float64, c RGBA) {
	setColor(s.dc, c)
	s.dc.DrawRoundedRectangle(x, y, w, h, radius)
	s.dc.Fill()
}

func (s *ContextSurface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c RGBA) {
	setColor(s.dc, c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRoundedRectangle(x, y, w, h, radius)
	s.dc.Stroke()
}

func (s *ContextSurface) DrawImage(img image.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	s.dc.Push()
	s.dc.Translate(x, y)
	s.dc.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	s.dc.DrawImage(img, 0, 0)
	s.dc.Pop()
}

func (s *ContextSurface) DrawLine(x1, y1, x2, y2, lineWidth float64, c RGBA) {
	setColor(s.dc, c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *ContextSurface) PushClip(x, y, w, h float64) {
	s.dc.Push()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Clip()
}

func (s *ContextSurface) PopClip() {
	s.dc.Pop()
}

// DrawContext exposes the raw gg.Context for text.FontProvider.Draw, which
// needs SetFontFace/DrawString directly rather than going through Surface's
// narrower primitives.
func (s *ContextSurface) DrawContext() *gg.Context { return s.dc }

// Package text implements the font provider external collaborator: finding,
// measuring, and drawing glyphs for the boxes pkg/layout and pkg/paint
// produce. pkg/layout only sees the narrow FontMetrics interface it defines
// itself; this package is where that interface gets a real implementation.
package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"wisp/pkg/style"
)

// FaceKey identifies one loaded font face: a family/weight/style/size
// combination.
type FaceKey struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64
}

// FontProvider is the interface pkg/paint and the layout glue code use to
// turn computed style into positioned, measured, drawable text. A concrete
// Provider backs it with gg/freetype; tests can substitute a fake.
type FontProvider interface {
	// FindFont resolves a FaceKey to a loaded font.Face, loading and
	// caching it on first use. Falls back to the built-in face (see
	// fallback.go) if no matching family is registered.
	FindFont(key FaceKey) font.Face
	// Measure returns the pixel width of s when drawn with key's face.
	Measure(s string, key FaceKey) float64
	// Draw renders s with its baseline at (x,y) in surf's coordinate
	// system, in the given color.
	Draw(surf *gg.Context, s string, x, y float64, key FaceKey, color style.Color)
}

// RegisteredFace names the file backing one (family, bold, italic) slot.
// A family need not have all four combinations registered; missing slots
// fall back to the nearest registered one for that family, then to the
// provider-wide system fallback.
type RegisteredFace struct {
	Family string
	Bold   bool
	Italic bool
	Path   string
}

// Provider is the gg/freetype-backed FontProvider. It is grounded on
// measure.go's free MeasureText/MeasureTextWithWeight functions, generalized
// into a struct that caches parsed *truetype.Font data and rendered
// font.Face values across calls instead of reloading a ttf file on every
// measurement.
type Provider struct {
	mu        sync.Mutex
	fonts     map[string]*truetype.Font // path -> parsed font data
	faces     map[FaceKey]font.Face     // resolved, size-specific faces
	registry  []RegisteredFace
	fallback  font.Face
	measureDC *gg.Context
}

// NewProvider creates a Provider with faces registered from reg and a
// guaranteed system-font fallback (see fallback.go), matching spec.md 4.6's
// "Failure semantics: missing font falls back to a default" requirement.
func NewProvider(reg []RegisteredFace) *Provider {
	return &Provider{
		fonts:     make(map[string]*truetype.Font),
		faces:     make(map[FaceKey]font.Face),
		registry:  reg,
		fallback:  fallbackFace(16),
		measureDC: gg.NewContext(1, 1),
	}
}

func (p *Provider) findPath(key FaceKey) (string, bool) {
	var best string
	bestScore := -1
	for _, r := range p.registry {
		if r.Family != key.Family {
			continue
		}
		score := 0
		if r.Bold == key.Bold {
			score++
		}
		if r.Italic == key.Italic {
			score++
		}
		if score > bestScore {
			bestScore = score
			best = r.Path
		}
	}
	return best, bestScore >= 0
}

func (p *Provider) loadFont(path string) (*truetype.Font, error) {
	if f, ok := p.fonts[path]; ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %s: %w", path, err)
	}
	p.fonts[path] = f
	return f, nil
}

// FindFont resolves key to a font.Face, caching the result. Any failure to
// locate or load a registered face silently falls back to the built-in
// system face rather than propagating an error, per spec.md 4.6's failure
// semantics for missing fonts.
func (p *Provider) FindFont(key FaceKey) font.Face {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.faces[key]; ok {
		return f
	}

	path, ok := p.findPath(key)
	if !ok {
		p.faces[key] = p.fallback
		return p.fallback
	}
	ttf, err := p.loadFont(path)
	if err != nil {
		p.faces[key] = p.fallback
		return p.fallback
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size: key.Size,
		DPI:  72,
	})
	p.faces[key] = face
	return face
}

// Measure returns the pixel width of s set in key's face, grounded on
// measure.go's MeasureText (gg.Context.MeasureString over a loaded face)
// but reusing a single scratch context and cached faces instead of
// constructing a fresh gg.Context and reloading the ttf file per call.
func (p *Provider) Measure(s string, key FaceKey) float64 {
	face := p.FindFont(key)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.measureDC.SetFontFace(face)
	w, _ := p.measureDC.MeasureString(s)
	return w
}

// Draw renders s with its baseline at (x,y) into surf.
func (p *Provider) Draw(surf *gg.Context, s string, x, y float64, key FaceKey, color style.Color) {
	face := p.FindFont(key)
	surf.SetFontFace(face)
	surf.SetRGBA255(int(color.R), int(color.G), int(color.B), int(color.A))
	surf.DrawString(s, x, y)
}

// FaceKeyFromStyle builds a FaceKey from a computed style, reading
// font-family/font-weight/font-style/font-size the way pkg/style computed
// them (Keyword/Number/FontStyle/Length values), defaulting to the generic
// sans-serif family and 16px size a missing property would compute to.
func FaceKeyFromStyle(cs *style.ComputedStyle) FaceKey {
	key := FaceKey{Family: "sans-serif", Size: 16}
	if fam, ok := cs.Get("font-family").(style.FontFamilyList); ok && len(fam) > 0 {
		key.Family = fam[0]
	}
	if sz, ok := cs.Get("font-size").(style.Length); ok {
		key.Size = float64(sz)
	}
	if w, ok := cs.Get("font-weight").(style.Number); ok {
		key.Bold = w >= 600
	}
	if fs, ok := cs.Get("font-style").(style.FontStyle); ok {
		key.Italic = fs.Kind != style.FontStyleNormal
	}
	return key
}

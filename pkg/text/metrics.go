package text

import (
	"golang.org/x/image/math/fixed"

	"wisp/pkg/style"
)

// Metrics adapts a FontProvider to pkg/layout's FontMetrics interface, the
// one collaborator layout.LayoutInline needs to turn words into positioned
// runs. Kept as a thin separate type (rather than making *Provider itself
// implement layout.FontMetrics) so pkg/layout never needs to know about
// gg.Context or FaceKey at all.
type Metrics struct {
	Provider FontProvider
}

func (m Metrics) MeasureWord(word string, cs *style.ComputedStyle) float64 {
	return m.Provider.Measure(word, FaceKeyFromStyle(cs))
}

func (m Metrics) SpaceWidth(cs *style.ComputedStyle) float64 {
	return m.Provider.Measure(" ", FaceKeyFromStyle(cs))
}

// LineHeight honors an explicit line-height computed value when present,
// falling back to the face's own ascent+descent (the CSS "normal" keyword
// behavior) when line-height is unset or the Normal sentinel.
func (m Metrics) LineHeight(cs *style.ComputedStyle) float64 {
	key := FaceKeyFromStyle(cs)
	switch lh := cs.Get("line-height").(type) {
	case style.Length:
		return float64(lh)
	case style.Number:
		return float64(lh) * key.Size
	}
	face := m.Provider.FindFont(key)
	metrics := face.Metrics()
	return fixedToFloat(metrics.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

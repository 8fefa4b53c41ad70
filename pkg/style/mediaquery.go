package style

import "strings"

// MediaCondition is a single `(feature: value)` term of an @media prelude.
type MediaCondition struct {
	Feature string
	Value   string
}

// MediaQuery is a parsed @media prelude: a media type ("screen", "print",
// "all") conjoined with zero or more feature conditions.
type MediaQuery struct {
	MediaType  string
	Conditions []MediaCondition
}

// Viewport is the environment an @media query is evaluated against.
type Viewport struct {
	Width       float64
	Height      float64
	Orientation string // "portrait" or "landscape"; derived from Width/Height if empty
}

func (vp Viewport) orientation() string {
	if vp.Orientation != "" {
		return vp.Orientation
	}
	if vp.Height >= vp.Width {
		return "portrait"
	}
	return "landscape"
}

// ParseMediaQuery parses an @media prelude such as
// "screen and (min-width: 768px) and (max-width: 1024px)".
func ParseMediaQuery(prelude string) *MediaQuery {
	prelude = strings.TrimSpace(prelude)
	mq := &MediaQuery{MediaType: "all"}

	fields := splitMediaAnd(prelude)
	if len(fields) == 0 {
		return mq
	}
	first := strings.TrimSpace(fields[0])
	if first != "" && !strings.HasPrefix(first, "(") {
		mq.MediaType = strings.ToLower(first)
		fields = fields[1:]
	}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		f = strings.TrimPrefix(f, "(")
		f = strings.TrimSuffix(f, ")")
		parts := strings.SplitN(f, ":", 2)
		if len(parts) != 2 {
			continue
		}
		mq.Conditions = append(mq.Conditions, MediaCondition{
			Feature: strings.TrimSpace(parts[0]),
			Value:   strings.TrimSpace(parts[1]),
		})
	}
	return mq
}

func splitMediaAnd(s string) []string {
	depth := 0
	var out []string
	last := 0
	lower := strings.ToLower(s)
	i := 0
	for i < len(s) {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && strings.HasPrefix(lower[i:], "and") && (i == 0 || s[i-1] == ' ') {
			end := i + 3
			if end >= len(s) || s[end] == ' ' {
				out = append(out, s[last:i])
				i = end
				last = end
				continue
			}
		}
		i++
	}
	out = append(out, s[last:])
	return out
}

// Evaluate reports whether mq's media type and every feature condition are
// satisfied by vp. A nil mq (no @media wrapper) always evaluates true.
func (mq *MediaQuery) Evaluate(vp Viewport) bool {
	if mq == nil {
		return true
	}
	if mq.MediaType != "all" && mq.MediaType != "screen" {
		return false
	}
	for _, c := range mq.Conditions {
		if !evaluateCondition(c, vp) {
			return false
		}
	}
	return true
}

func evaluateCondition(c MediaCondition, vp Viewport) bool {
	switch c.Feature {
	case "min-width":
		return vp.Width >= parsePxFeature(c.Value)
	case "max-width":
		return vp.Width <= parsePxFeature(c.Value)
	case "min-height":
		return vp.Height >= parsePxFeature(c.Value)
	case "max-height":
		return vp.Height <= parsePxFeature(c.Value)
	case "orientation":
		return strings.EqualFold(c.Value, vp.orientation())
	default:
		return true
	}
}

func parsePxFeature(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	toks := Tokenize(v)
	if len(toks) > 0 && (toks[0].Type == TokenNumber || toks[0].Type == TokenDimension) {
		return toks[0].Num
	}
	return 0
}

package style

import "sort"

// RawValue is a style map's entry before computation: an unparsed source
// string (or, for a property that was precomputed out of band, an already
// typed Value) plus whether it carried `!important`.
type RawValue struct {
	Source    string
	Precomputed Value
	Important bool
}

// RawStyle is the map from property name to its cascaded, not-yet-computed
// value, assembled by Cascade for one element.
type RawStyle map[string]RawValue

// TagDefaults is the small per-tag static table consulted both as the
// lowest-priority layer of the cascade and by `revert`.
type TagDefaults map[string]map[string]string

// DefaultTagStyles is the built-in user-agent stylesheet: the minimal set
// of tag defaults needed to render plain HTML sensibly without an author
// stylesheet.
var DefaultTagStyles = TagDefaults{
	"html":       {"display": "block"},
	"body":       {"display": "block", "margin-top": "8px", "margin-right": "8px", "margin-bottom": "8px", "margin-left": "8px"},
	"div":        {"display": "block"},
	"p":          {"display": "block", "margin-top": "1em", "margin-bottom": "1em"},
	"section":    {"display": "block"},
	"article":    {"display": "block"},
	"header":     {"display": "block"},
	"footer":     {"display": "block"},
	"nav":        {"display": "block"},
	"main":       {"display": "block"},
	"ul":         {"display": "block", "margin-top": "1em", "margin-bottom": "1em", "padding-left": "40px"},
	"ol":         {"display": "block", "margin-top": "1em", "margin-bottom": "1em", "padding-left": "40px"},
	"li":         {"display": "block"},
	"h1":         {"display": "block", "font-size": "32px", "margin-top": "0.67em", "margin-bottom": "0.67em", "font-weight": "bold"},
	"h2":         {"display": "block", "font-size": "24px", "margin-top": "0.83em", "margin-bottom": "0.83em", "font-weight": "bold"},
	"h3":         {"display": "block", "font-size": "18.72px", "margin-top": "1em", "margin-bottom": "1em", "font-weight": "bold"},
	"a":          {"display": "inline", "color": "blue", "text-decoration-line": "underline", "cursor": "pointer"},
	"span":       {"display": "inline"},
	"strong":     {"display": "inline", "font-weight": "bold"},
	"em":         {"display": "inline", "font-style": "italic"},
	"b":          {"display": "inline", "font-weight": "bold"},
	"i":          {"display": "inline", "font-style": "italic"},
	"img":        {"display": "inline-block"},
	"table":      {"display": "table"},
	"button":     {"display": "inline-block", "cursor": "pointer"},
	"input":      {"display": "inline-block"},
	"label":      {"display": "inline"},
	"pre":        {"display": "block", "white-space": "pre"},
	"code":       {"display": "inline"},
	"br":         {"display": "inline"},
	"head":       {"display": "none"},
	"script":     {"display": "none"},
	"style":      {"display": "none"},
	"title":      {"display": "none"},
}

// cascadedDeclaration is one longhand declaration as it emerges from a
// matched rule, carrying the information needed to rank it against every
// other declaration touching the same property: its importance (per
// declaration, since a single rule may mix important and non-important
// values), the specificity of the selector branch that matched, and its
// position in source order.
type cascadedDeclaration struct {
	decl        Declaration
	specificity Specificity
	sourceOrder int
}

// Cascade assembles an element's RawStyle from three layers, in increasing
// priority: tag defaults, matched author rules (sorted by importance,
// specificity, source order), and the inline style attribute.
func Cascade(tag string, sheets []SourceSheet, el ElementView, inlineDecls []Declaration, vp Viewport) RawStyle {
	raw := make(RawStyle)

	if defaults, ok := DefaultTagStyles[tag]; ok {
		for prop, val := range defaults {
			raw[prop] = RawValue{Source: val}
		}
	}

	cascaded := matchDeclarations(sheets, el, vp)
	sortCascadeOrder(cascaded)
	for _, c := range cascaded {
		for _, longhand := range ExpandShorthand(c.decl) {
			applyDeclaration(raw, longhand)
		}
	}

	for _, d := range inlineDecls {
		for _, longhand := range ExpandShorthand(d) {
			applyDeclaration(raw, longhand)
		}
	}

	return raw
}

func applyDeclaration(raw RawStyle, d Declaration) {
	existing, ok := raw[d.Property]
	if ok && existing.Important && !d.Important {
		return
	}
	raw[d.Property] = RawValue{Source: d.Value, Important: d.Important}
}

func matchDeclarations(sheets []SourceSheet, el ElementView, vp Viewport) []cascadedDeclaration {
	var out []cascadedDeclaration
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules {
			if !rule.MediaQuery.Evaluate(vp) {
				continue
			}
			branch, ok := MatchingSelector(rule.Selectors, el)
			if !ok {
				continue
			}
			sp := SpecificityOf(branch)
			for _, d := range rule.Declarations {
				out = append(out, cascadedDeclaration{decl: d, specificity: sp, sourceOrder: rule.SourceOrder})
			}
		}
	}
	return out
}

// sortCascadeOrder sorts ascending by (important, specificity, source
// order) so that later-iterated, higher-priority declarations are applied
// last and therefore win in applyDeclaration's last-write-wins map.
func sortCascadeOrder(cascaded []cascadedDeclaration) {
	sort.SliceStable(cascaded, func(i, j int) bool {
		a, b := cascaded[i], cascaded[j]
		if a.decl.Important != b.decl.Important {
			return !a.decl.Important // non-important sorts first (lower priority)
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.sourceOrder < b.sourceOrder
	})
}

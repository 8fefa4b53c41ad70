package style

import "errors"

// ErrMissingDependency is returned by an acceptor that needs a parent
// property which has not been computed yet; the computation engine retries
// the property once its declared dependencies are resolved (see compute.go's
// priority-property pass for color/font-size/custom properties).
var ErrMissingDependency = errors.New("style: acceptor depends on an unresolved parent property")

// AcceptorContext is what an acceptor function sees beyond the raw value:
// the parent element's already-computed style (for relative units and
// inherited defaults) and the element's own custom properties (for var()
// substitution, already performed by the time the acceptor runs).
type AcceptorContext struct {
	Parent *ComputedStyle
}

// Acceptor validates and converts a declaration's raw source text into a
// typed Value. It returns (nil, nil) to mean "not a valid value for this
// property" (the computation engine then falls back to unset), and
// (nil, ErrMissingDependency) to mean the parent hasn't computed the
// property this acceptor depends on yet.
type Acceptor func(raw string, ctx AcceptorContext) (Value, error)

// PropertySpec is one entry of the property registry: its initial value,
// whether it inherits from the parent by default, and the acceptor that
// turns source text into a Value.
type PropertySpec struct {
	Name     string
	Initial  string
	Inherits bool
	Accept   Acceptor
}

// Registry is the full set of recognized longhand properties, keyed by
// name. Shorthands are expanded away before anything consults this map
// (see shorthand.go).
var Registry = map[string]PropertySpec{}

func register(name, initial string, inherits bool, accept Acceptor) {
	Registry[name] = PropertySpec{Name: name, Initial: initial, Inherits: inherits, Accept: accept}
}

// PriorityProperties are resolved before all others in a single
// computation pass, since later acceptors may depend on them through the
// parent style (font-size for em units, color for currentcolor). Custom
// properties are not in this list; Compute collects them before either, for
// var() substitution.
func PriorityProperties() []string {
	names := []string{"color", "font-size"}
	return names
}

func init() {
	register("color", "canvastext", true, acceptColor)
	register("background-color", "transparent", false, acceptColor)
	register("border-top-color", "currentcolor", false, acceptColor)
	register("border-right-color", "currentcolor", false, acceptColor)
	register("border-bottom-color", "currentcolor", false, acceptColor)
	register("border-left-color", "currentcolor", false, acceptColor)
	register("outline-color", "currentcolor", false, acceptColor)

	register("font-size", "16px", true, acceptFontSize)
	register("font-weight", "400", true, acceptFontWeight)
	register("font-style", "normal", true, acceptFontStyle)
	register("font-family", "sans-serif", true, acceptFontFamily)
	register("line-height", "normal", true, acceptLineHeightOrNumberOrLength)

	register("width", "auto", false, acceptAutoLengthPercentage)
	register("height", "auto", false, acceptAutoLengthPercentage)
	register("min-width", "0", false, acceptLengthPercentage)
	register("min-height", "0", false, acceptLengthPercentage)
	register("max-width", "none", false, acceptNoneLengthPercentage)
	register("max-height", "none", false, acceptNoneLengthPercentage)

	for _, side := range []string{"top", "right", "bottom", "left"} {
		register("margin-"+side, "0", false, acceptAutoLengthPercentage)
		register("padding-"+side, "0", false, acceptLengthPercentage)
		register("border-"+side+"-width", "medium", false, acceptBorderWidth)
		register("border-"+side+"-style", "none", false, acceptBorderStyle)
		register(side, "auto", false, acceptAutoLengthPercentage)
	}
	register("outline-width", "medium", false, acceptBorderWidth)
	register("outline-style", "none", false, acceptBorderStyle)

	register("box-sizing", "content-box", false, acceptKeywords("content-box", "border-box"))
	register("display", "inline", false, acceptKeywords("block", "inline", "inline-block", "none", "flex", "grid", "table"))
	register("position", "static", false, acceptKeywords("static", "relative", "absolute", "fixed", "sticky"))
	register("float", "none", false, acceptKeywords("none", "left", "right"))
	register("clear", "none", false, acceptKeywords("none", "left", "right", "both"))
	register("overflow-x", "visible", false, acceptKeywords("visible", "hidden", "scroll", "auto"))
	register("overflow-y", "visible", false, acceptKeywords("visible", "hidden", "scroll", "auto"))
	register("visibility", "visible", true, acceptKeywords("visible", "hidden", "collapse"))
	register("text-align", "left", true, acceptKeywords("left", "right", "center", "justify"))
	register("vertical-align", "baseline", false, acceptKeywords("baseline", "top", "middle", "bottom", "sub", "super", "text-top", "text-bottom"))
	register("white-space", "normal", true, acceptKeywords("normal", "nowrap", "pre", "pre-wrap", "pre-line"))
	register("text-decoration-line", "none", false, acceptKeywords("none", "underline", "overline", "line-through"))
	register("text-transform", "none", true, acceptKeywords("none", "uppercase", "lowercase", "capitalize"))
	register("list-style-type", "disc", true, acceptKeywords("disc", "circle", "square", "decimal", "none"))
	register("cursor", "auto", true, acceptCursor)

	register("opacity", "1", false, acceptNumberClamped(0, 1))
	register("z-index", "auto", false, acceptAutoInteger)
	register("word-spacing", "normal", true, acceptNormalLength)
	register("letter-spacing", "normal", true, acceptNormalLength)

	register("background-image", "none", false, acceptBackgroundImage)
	register("background-repeat", "repeat", false, acceptKeywords("repeat", "no-repeat", "repeat-x", "repeat-y"))
	register("background-position", "0% 0%", false, acceptLengthPercentage)

	for _, corner := range []string{"top-left", "top-right", "bottom-right", "bottom-left"} {
		register("border-"+corner+"-radius", "0", false, acceptLengthPercentage)
	}
}

// IsCustomProperty reports whether name is a `--custom-property`: these
// bypass the registry and validation entirely and are stored verbatim.
func IsCustomProperty(name string) bool {
	return len(name) >= 2 && name[0] == '-' && name[1] == '-'
}

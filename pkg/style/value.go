// Package style implements the CSS value model, cascade, and computation
// pipeline: the core of wisp's style-and-layout engine.
package style

import "fmt"

// Value is the sum type of everything a computed CSS property can hold.
// Acceptors return a Value; the computation engine never inspects raw
// strings once a property has been accepted.
type Value interface {
	isValue()
}

// Length is a pixel count.
type Length float64

func (Length) isValue() {}

// Percentage is a float in percent units (50 means 50%), resolved against
// a context at layout or computation time.
type Percentage float64

func (Percentage) isValue() {}

// Angle is a scalar in degrees.
type Angle float64

func (Angle) isValue() {}

// Time is a scalar in milliseconds.
type Time float64

func (Time) isValue() {}

// Resolution is a scalar in dots-per-pixel (dppx).
type Resolution float64

func (Resolution) isValue() {}

// Number is a plain, unitless CSS number.
type Number float64

func (Number) isValue() {}

// Color is an RGBA color with 8-bit components.
type Color struct {
	R, G, B, A uint8
}

func (Color) isValue() {}

// Keyword is an accepted enumerated keyword (e.g. "solid", "disc", "none"
// when used as a keyword rather than the background-image sentinel).
type Keyword string

func (Keyword) isValue() {}

type autoType struct{}

func (autoType) isValue() {}

// Auto is the singleton "auto" sentinel, distinct from any number.
var Auto Value = autoType{}

// IsAuto reports whether v is the Auto sentinel.
func IsAuto(v Value) bool {
	_, ok := v.(autoType)
	return ok
}

type normalType struct{}

func (normalType) isValue() {}

// Normal is the singleton "normal" sentinel.
var Normal Value = normalType{}

// IsNormal reports whether v is the Normal sentinel.
func IsNormal(v Value) bool {
	_, ok := v.(normalType)
	return ok
}

// FontStyleKind enumerates font-style's keyword forms.
type FontStyleKind int

const (
	FontStyleNormal FontStyleKind = iota
	FontStyleItalic
	FontStyleOblique
)

// FontStyle is the computed value of the font-style property.
type FontStyle struct {
	Kind  FontStyleKind
	Angle Angle // only meaningful when Kind == FontStyleOblique
}

func (FontStyle) isValue() {}

// BinOpKind enumerates calc() operators.
type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
)

func (k BinOpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// BinOp is a deferred calc() expression. Operands are Length, Percentage,
// Angle, Number, or nested BinOp values; it is resolved against a context
// once every percentage basis is known (see calc.go).
type BinOp struct {
	Left  Value
	Op    BinOpKind
	Right Value
}

func (BinOp) isValue() {}

// FontFamilyList is the computed value of font-family: an ordered list of
// family names to try, ending (by convention) in a generic family.
type FontFamilyList []string

func (FontFamilyList) isValue() {}

// BackgroundImage is one layer of a background-image value.
type BackgroundImage struct {
	URL  string
	None bool
}

// BackgroundImageList is the computed value of background-image.
type BackgroundImageList []BackgroundImage

func (BackgroundImageList) isValue() {}

// FourSided holds one value per box edge, in CSS's top/right/bottom/left
// order. It is used for already-resolved Length tuples (margin, padding,
// border widths) once computation has run.
type FourSided struct {
	Top, Right, Bottom, Left Value
}

func (FourSided) isValue() {}

// BorderRadii is the computed value of border-radius: a horizontal and
// vertical radius per corner.
type BorderRadii struct {
	TopLeftH, TopLeftV         Value
	TopRightH, TopRightV       Value
	BottomRightH, BottomRightV Value
	BottomLeftH, BottomLeftV   Value
}

func (BorderRadii) isValue() {}

// Describe renders a Value for diagnostics and round-trip tests.
func Describe(v Value) string {
	switch t := v.(type) {
	case Length:
		return fmt.Sprintf("%gpx", float64(t))
	case Percentage:
		return fmt.Sprintf("%g%%", float64(t))
	case Angle:
		return fmt.Sprintf("%gdeg", float64(t))
	case Time:
		return fmt.Sprintf("%gms", float64(t))
	case Resolution:
		return fmt.Sprintf("%gdppx", float64(t))
	case Number:
		return fmt.Sprintf("%g", float64(t))
	case Color:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", t.R, t.G, t.B, t.A)
	case Keyword:
		return string(t)
	case autoType:
		return "auto"
	case normalType:
		return "normal"
	case FontFamilyList:
		return fmt.Sprintf("%v", []string(t))
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", t)
	}
}

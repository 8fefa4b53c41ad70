package style

import "fmt"

// ResolveContext carries the bases against which relative values are
// resolved: the percentage basis (e.g. containing block width), the root
// and parent font sizes for em/rem, and the viewport for vw/vh units.
type ResolveContext struct {
	PercentBasis    float64
	FontSize        float64
	RootFontSize    float64
	ViewportWidth   float64
	ViewportHeight  float64
}

// ResolveLength collapses any Value that ultimately denotes a length
// (Length, Percentage, or a calc() BinOp tree mixing the two) down to a
// concrete pixel float. Keywords, colors, and other non-length values are
// programmer errors at this point and panic — the acceptor stage is
// responsible for ensuring only length-shaped values reach layout.
func ResolveLength(v Value, ctx ResolveContext) float64 {
	switch t := v.(type) {
	case Length:
		return float64(t)
	case Percentage:
		return float64(t) / 100 * ctx.PercentBasis
	case Number:
		return float64(t)
	case BinOp:
		resolved := resolveCalc(t, ctx)
		return ResolveLength(resolved, ctx)
	case autoType:
		return 0
	default:
		panic(fmt.Sprintf("style: ResolveLength on non-length value %v", Describe(v)))
	}
}

// resolveCalc evaluates a BinOp tree bottom-up, applying calc()'s typing
// rule at each node: + and - require (or coerce to) matching types and
// yield the non-percentage operand's type, unless both sides are
// percentages, in which case the result stays a Percentage; * and /
// require one side to be a bare Number and yield the other operand's type.
func resolveCalc(op BinOp, ctx ResolveContext) Value {
	left := op.Left
	if nested, ok := left.(BinOp); ok {
		left = resolveCalc(nested, ctx)
	}
	right := op.Right
	if nested, ok := right.(BinOp); ok {
		right = resolveCalc(nested, ctx)
	}

	switch op.Op {
	case OpAdd, OpSub:
		return addSub(left, right, op.Op, ctx)
	case OpMul, OpDiv:
		return mulDiv(left, right, op.Op)
	default:
		panic(fmt.Sprintf("style: unknown calc operator %v", op.Op))
	}
}

func addSub(left, right Value, op BinOpKind, ctx ResolveContext) Value {
	lp, lIsPct := left.(Percentage)
	rp, rIsPct := right.(Percentage)

	sign := 1.0
	if op == OpSub {
		sign = -1.0
	}

	switch {
	case lIsPct && rIsPct:
		return Percentage(float64(lp) + sign*float64(rp))
	case lIsPct && !rIsPct:
		// Percentage + Length/Number: result keeps the non-percentage
		// operand's type, resolving the percentage against the context
		// and using it as the base that right's scalar is added to (not
		// the other way around — `-` is not commutative).
		lv := ResolveLength(lp, ctx)
		return addTypedBase(lv, right, sign)
	case !lIsPct && rIsPct:
		rv := ResolveLength(rp, ctx)
		return addTypedReverse(left, rv, sign)
	default:
		return addTyped(left, scalarOf(right), sign)
	}
}

// addTyped adds a resolved scalar to v, preserving v's Value type.
func addTyped(v Value, scalar float64, sign float64) Value {
	switch t := v.(type) {
	case Length:
		return Length(float64(t) + sign*scalar)
	case Angle:
		return Angle(float64(t) + sign*scalar)
	case Time:
		return Time(float64(t) + sign*scalar)
	case Resolution:
		return Resolution(float64(t) + sign*scalar)
	case Number:
		return Number(float64(t) + sign*scalar)
	default:
		panic(fmt.Sprintf("style: calc() operand not arithmetic: %v", Describe(v)))
	}
}

// addTypedReverse handles left (non-percentage) + right-resolved-scalar,
// i.e. left minus/plus a fixed amount, same semantics as addTyped.
func addTypedReverse(v Value, scalar float64, sign float64) Value {
	return addTyped(v, scalar, sign)
}

// addTypedBase adds v's scalar (signed) onto base, preserving v's type.
// Used when the base comes from a resolved percentage on the left and v is
// the right operand, so the result is base + sign*scalarOf(v) rather than
// v's own value plus sign*base.
func addTypedBase(base float64, v Value, sign float64) Value {
	switch t := v.(type) {
	case Length:
		return Length(base + sign*float64(t))
	case Angle:
		return Angle(base + sign*float64(t))
	case Time:
		return Time(base + sign*float64(t))
	case Resolution:
		return Resolution(base + sign*float64(t))
	case Number:
		return Number(base + sign*float64(t))
	default:
		panic(fmt.Sprintf("style: calc() operand not arithmetic: %v", Describe(v)))
	}
}

func scalarOf(v Value) float64 {
	switch t := v.(type) {
	case Length:
		return float64(t)
	case Angle:
		return float64(t)
	case Time:
		return float64(t)
	case Resolution:
		return float64(t)
	case Number:
		return float64(t)
	case Percentage:
		return float64(t)
	default:
		panic(fmt.Sprintf("style: calc() operand not arithmetic: %v", Describe(v)))
	}
}

func mulDiv(left, right Value, op BinOpKind) Value {
	ln, lIsNum := left.(Number)
	rn, rIsNum := right.(Number)

	switch {
	case lIsNum && !rIsNum:
		return scaleTyped(right, float64(ln), op)
	case !lIsNum && rIsNum:
		return scaleTyped(left, float64(rn), op)
	case lIsNum && rIsNum:
		if op == OpDiv {
			return Number(float64(ln) / float64(rn))
		}
		return Number(float64(ln) * float64(rn))
	default:
		panic("style: calc() * and / require one operand to be a bare number")
	}
}

func scaleTyped(v Value, factor float64, op BinOpKind) Value {
	scale := factor
	if op == OpDiv {
		scale = 1 / factor
	}
	switch t := v.(type) {
	case Length:
		return Length(float64(t) * scale)
	case Percentage:
		return Percentage(float64(t) * scale)
	case Angle:
		return Angle(float64(t) * scale)
	case Time:
		return Time(float64(t) * scale)
	case Resolution:
		return Resolution(float64(t) * scale)
	case Number:
		return Number(float64(t) * scale)
	default:
		panic(fmt.Sprintf("style: calc() operand not arithmetic: %v", Describe(v)))
	}
}

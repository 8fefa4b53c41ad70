package style

import "strings"

// acceptColor accepts any ParseColor syntax plus the "currentcolor"
// keyword, which here resolves to the parent's already-computed color (the
// right answer for `color: currentcolor` itself and for initial values).
// Compute resolves currentcolor on the other *-color properties to the
// element's own color before calling this — hence color is a priority
// property computed before anything that might reference it.
func acceptColor(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "currentcolor") {
		if ctx.Parent == nil {
			return Color{0, 0, 0, 255}, nil
		}
		if c, ok := ctx.Parent.Get("color").(Color); ok {
			return c, nil
		}
		return nil, ErrMissingDependency
	}
	if v, ok := parseCalcOrLiteral(raw, parseColorLiteral); ok {
		return v, nil
	}
	return nil, nil
}

func parseColorLiteral(raw string) (Value, bool) {
	c, ok := ParseColor(raw)
	if !ok {
		return nil, false
	}
	return c, true
}

// acceptFontSize handles absolute keywords, relative keywords (larger,
// smaller), and length/percentage values resolved against the parent's
// font size.
func acceptFontSize(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	absoluteSizes := map[string]float64{
		"xx-small": 9, "x-small": 10, "small": 13, "medium": 16,
		"large": 18, "x-large": 24, "xx-large": 32, "xxx-large": 48,
	}
	if px, ok := absoluteSizes[raw]; ok {
		return Length(px), nil
	}
	parentSize := 16.0
	if ctx.Parent != nil {
		if fs, ok := ctx.Parent.Get("font-size").(Length); ok {
			parentSize = float64(fs)
		} else {
			return nil, ErrMissingDependency
		}
	}
	switch raw {
	case "larger":
		return Length(parentSize * 1.2), nil
	case "smaller":
		return Length(parentSize / 1.2), nil
	}
	v, ok := parseLengthOrPercentageToken(raw)
	if !ok {
		return nil, nil
	}
	if pct, ok := v.(Percentage); ok {
		return Length(float64(pct) / 100 * parentSize), nil
	}
	return v, nil
}

// acceptFontWeight handles the numeric 100-900 scale, normal/bold, and
// bolder/lighter relative to the parent's computed weight.
func acceptFontWeight(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	switch raw {
	case "normal":
		return Number(400), nil
	case "bold":
		return Number(700), nil
	case "bolder", "lighter":
		parentWeight := 400.0
		if ctx.Parent != nil {
			if w, ok := ctx.Parent.Get("font-weight").(Number); ok {
				parentWeight = float64(w)
			} else {
				return nil, ErrMissingDependency
			}
		}
		if raw == "bolder" {
			return Number(clampWeight(parentWeight + 300)), nil
		}
		return Number(clampWeight(parentWeight - 300)), nil
	}
	if n, ok := parseNumberToken(raw); ok && n >= 1 && n <= 1000 {
		return Number(n), nil
	}
	return nil, nil
}

func clampWeight(w float64) float64 {
	if w < 100 {
		return 100
	}
	if w > 900 {
		return 900
	}
	return w
}

func acceptFontStyle(raw string, ctx AcceptorContext) (Value, error) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return nil, nil
	}
	switch fields[0] {
	case "normal":
		return FontStyle{Kind: FontStyleNormal}, nil
	case "italic":
		return FontStyle{Kind: FontStyleItalic}, nil
	case "oblique":
		angle := 14.0
		if len(fields) > 1 {
			if a, ok := parseAngleToken(fields[1]); ok {
				angle = a
			}
		}
		return FontStyle{Kind: FontStyleOblique, Angle: Angle(angle)}, nil
	}
	return nil, nil
}

func acceptFontFamily(raw string, ctx AcceptorContext) (Value, error) {
	var names FontFamilyList
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		name = strings.Trim(name, "\"'")
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	return names, nil
}

func acceptLineHeightOrNumberOrLength(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "normal") {
		return Normal, nil
	}
	if n, ok := parseNumberToken(raw); ok {
		return Number(n), nil
	}
	if v, ok := parseLengthOrPercentageToken(raw); ok {
		return v, nil
	}
	return nil, nil
}

func acceptAutoLengthPercentage(raw string, ctx AcceptorContext) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "auto") {
		return Auto, nil
	}
	return acceptLengthPercentage(raw, ctx)
}

func acceptNoneLengthPercentage(raw string, ctx AcceptorContext) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "none") {
		return Keyword("none"), nil
	}
	return acceptLengthPercentage(raw, ctx)
}

func acceptLengthPercentage(raw string, ctx AcceptorContext) (Value, error) {
	if v, ok := parseCalcOrLiteral(raw, func(s string) (Value, bool) {
		return parseLengthOrPercentageToken(s)
	}); ok {
		return v, nil
	}
	return nil, nil
}

func acceptBorderWidth(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	switch raw {
	case "thin":
		return Length(1), nil
	case "medium":
		return Length(3), nil
	case "thick":
		return Length(5), nil
	}
	return acceptLengthPercentage(raw, ctx)
}

func acceptBorderStyle(raw string, ctx AcceptorContext) (Value, error) {
	return acceptKeywords("none", "hidden", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset")(raw, ctx)
}

func acceptCursor(raw string, ctx AcceptorContext) (Value, error) {
	return acceptKeywords("auto", "default", "pointer", "text", "move", "not-allowed", "grab", "grabbing", "crosshair", "wait", "help", "none")(raw, ctx)
}

func acceptKeywords(allowed ...string) Acceptor {
	set := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		set[k] = true
	}
	return func(raw string, ctx AcceptorContext) (Value, error) {
		lower := strings.ToLower(strings.TrimSpace(raw))
		if set[lower] {
			return Keyword(lower), nil
		}
		return nil, nil
	}
}

func acceptNumberClamped(lo, hi float64) Acceptor {
	return func(raw string, ctx AcceptorContext) (Value, error) {
		n, ok := parseNumberToken(raw)
		if !ok {
			return nil, nil
		}
		if n < lo {
			n = lo
		}
		if n > hi {
			n = hi
		}
		return Number(n), nil
	}
}

func acceptAutoInteger(raw string, ctx AcceptorContext) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "auto") {
		return Auto, nil
	}
	if n, ok := parseNumberToken(raw); ok {
		return Number(n), nil
	}
	return nil, nil
}

func acceptNormalLength(raw string, ctx AcceptorContext) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "normal") {
		return Normal, nil
	}
	return acceptLengthPercentage(raw, ctx)
}

// acceptBackgroundImage accepts "none" or a comma-separated list of url(…)
// references; gradients are a documented gap (see DESIGN.md) since no
// painting surface in this engine composites gradients yet.
func acceptBackgroundImage(raw string, ctx AcceptorContext) (Value, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "none") {
		return BackgroundImageList{{None: true}}, nil
	}
	var layers BackgroundImageList
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		if strings.HasPrefix(lower, "url(") && strings.HasSuffix(part, ")") {
			inner := part[4 : len(part)-1]
			inner = strings.Trim(strings.TrimSpace(inner), "\"'")
			layers = append(layers, BackgroundImage{URL: inner})
			continue
		}
		return nil, nil
	}
	if len(layers) == 0 {
		return nil, nil
	}
	return layers, nil
}

// parseCalcOrLiteral dispatches calc() expressions to the calc parser and
// anything else to fn.
func parseCalcOrLiteral(raw string, fn func(string) (Value, bool)) (Value, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "calc(") && strings.HasSuffix(trimmed, ")") {
		return parseCalcExpr(trimmed[5 : len(trimmed)-1])
	}
	return fn(trimmed)
}

func parseLengthOrPercentageToken(raw string) (Value, bool) {
	toks := Tokenize(strings.TrimSpace(raw))
	if len(toks) == 0 {
		return nil, false
	}
	switch toks[0].Type {
	case TokenPercentage:
		return Percentage(toks[0].Num), true
	case TokenDimension:
		return Length(pixelsForUnit(toks[0].Num, toks[0].Value)), true
	case TokenNumber:
		if toks[0].Num == 0 {
			return Length(0), true
		}
	}
	return nil, false
}

func parseNumberToken(raw string) (float64, bool) {
	toks := Tokenize(strings.TrimSpace(raw))
	if len(toks) == 0 || toks[0].Type != TokenNumber {
		return 0, false
	}
	return toks[0].Num, true
}

func parseAngleToken(raw string) (float64, bool) {
	toks := Tokenize(strings.TrimSpace(raw))
	if len(toks) == 0 {
		return 0, false
	}
	if toks[0].Type == TokenDimension && toks[0].Value == "deg" {
		return toks[0].Num, true
	}
	if toks[0].Type == TokenNumber {
		return toks[0].Num, true
	}
	return 0, false
}

// pixelsForUnit converts an absolute CSS unit to pixels at the canonical
// 96dpi; viewport- and font-relative units (vw/vh/em/rem) are resolved
// later, against a ResolveContext, so they are left as unresolved length
// percentages the caller must special-case — this engine treats em/rem as
// already expanded at acceptor time via the font-size priority pass
// (see compute.go), so only absolute units reach here.
func pixelsForUnit(n float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "px":
		return n
	case "in":
		return n * 96
	case "cm":
		return n * 96 / 2.54
	case "mm":
		return n * 96 / 25.4
	case "pt":
		return n * 96 / 72
	case "pc":
		return n * 16
	case "q":
		return n * 96 / 101.6
	default:
		return n
	}
}

// parseCalcExpr parses a calc() argument list into a Value, honoring
// operator precedence (*/ before +-): a single term comes back as a plain
// scalar, anything else as a BinOp tree that ResolveLength evaluates later.
func parseCalcExpr(src string) (Value, bool) {
	toks := Tokenize(src)
	p := &calcParser{toks: filterNonWhitespace(toks)}
	v, ok := p.parseSum()
	if end, more := p.peek(); !ok || (more && end.Type != TokenEOF) {
		return nil, false
	}
	return v, true
}

func filterNonWhitespace(toks []Token) []Token {
	out := toks[:0:0]
	for _, t := range toks {
		if t.Type != TokenWhitespace {
			out = append(out, t)
		}
	}
	return out
}

type calcParser struct {
	toks []Token
	pos  int
}

func (p *calcParser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *calcParser) parseSum() (Value, bool) {
	left, ok := p.parseProduct()
	if !ok {
		return nil, false
	}
	for {
		t, ok := p.peek()
		if !ok || t.Type != TokenDelim || (t.Value != "+" && t.Value != "-") {
			return left, true
		}
		p.pos++
		right, ok := p.parseProduct()
		if !ok {
			return nil, false
		}
		op := OpAdd
		if t.Value == "-" {
			op = OpSub
		}
		left = BinOp{Left: left, Op: op, Right: right}
	}
}

func (p *calcParser) parseProduct() (Value, bool) {
	left, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for {
		t, ok := p.peek()
		if !ok || t.Type != TokenDelim || (t.Value != "*" && t.Value != "/") {
			return left, true
		}
		p.pos++
		right, ok := p.parseAtom()
		if !ok {
			return nil, false
		}
		op := OpMul
		if t.Value == "/" {
			op = OpDiv
		}
		left = BinOp{Left: left, Op: op, Right: right}
	}
}

func (p *calcParser) parseAtom() (Value, bool) {
	t, ok := p.peek()
	if !ok {
		return nil, false
	}
	if t.Type == TokenLParen {
		p.pos++
		v, ok := p.parseSum()
		if !ok {
			return nil, false
		}
		end, ok := p.peek()
		if !ok || end.Type != TokenRParen {
			return nil, false
		}
		p.pos++
		return v, true
	}
	p.pos++
	switch t.Type {
	case TokenNumber:
		return Number(t.Num), true
	case TokenPercentage:
		return Percentage(t.Num), true
	case TokenDimension:
		return Length(pixelsForUnit(t.Num, t.Value)), true
	default:
		return nil, false
	}
}

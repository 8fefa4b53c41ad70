package style

import (
	"strconv"
	"strings"
)

// Selector is the sum type produced by the selector parser: either a
// single compound selector, a combinator chain of compounds, or a
// comma-separated list of either. Matching and specificity are defined as
// type switches over this interface rather than a duck-typed Matches()
// method, so every selector shape the grammar admits is enumerable.
type Selector interface {
	isSelector()
}

// AttrOp enumerates the attribute-selector comparison operators.
type AttrOp int

const (
	AttrExists  AttrOp = iota // [attr]
	AttrEquals                // [attr=val]
	AttrInList                // [attr~=val] (space-separated token list)
	AttrLangish               // [attr|=val] (val or val-prefixed)
	AttrPrefix                // [attr^=val]
	AttrSuffix                // [attr$=val]
	AttrSubstr                // [attr*=val]
)

// AttrSelector matches a single attribute predicate.
type AttrSelector struct {
	Name  string
	Op    AttrOp
	Value string
}

// PseudoClassKind enumerates the supported pseudo-classes.
type PseudoClassKind int

const (
	PseudoHover PseudoClassKind = iota
	PseudoFocus
	PseudoActive
	PseudoVisited
	PseudoChecked
	PseudoDisabled
	PseudoEnabled
	PseudoEmpty
	PseudoRoot
	PseudoFirstChild
	PseudoLastChild
	PseudoOnlyChild
	PseudoFirstOfType
	PseudoLastOfType
	PseudoNthChild
	PseudoNthOfType
	PseudoLang
	PseudoNot
)

// PseudoClass is a single pseudo-class predicate. Kind determines which of
// the auxiliary fields apply: NthA/NthB for the nth-child family, Lang for
// :lang(), Not for :not().
type PseudoClass struct {
	Kind PseudoClassKind
	NthA int
	NthB int
	Lang string
	Not  *SelectorList
}

// CompoundSelector is the set of simple selectors that must all match the
// same element: a tag name (or universal), an id, a list of classes,
// attribute predicates, and pseudo-classes. PseudoElement names a trailing
// ::before/::after/::first-line/::first-letter, empty if none.
type CompoundSelector struct {
	Tag           string // "" means no tag constraint; "*" is explicit universal
	ID            string
	Classes       []string
	Attrs         []AttrSelector
	PseudoClasses []PseudoClass
	PseudoElement string
}

func (CompoundSelector) isSelector() {}

// Combinator enumerates how two compounds in a chain relate.
type Combinator int

const (
	CombinatorDescendant     Combinator = iota // "a b"
	CombinatorDirectChild                      // "a > b"
	CombinatorAdjacent                         // "a + b"
	CombinatorGeneralSibling                    // "a ~ b"
)

// ComplexSelector is a chain of compound selectors joined by combinators,
// e.g. "ul.nav > li.active + li". Compounds[len-1] is the subject compound
// (the one being tested); earlier compounds constrain ancestors/siblings.
type ComplexSelector struct {
	Compounds   []CompoundSelector
	Combinators []Combinator // len == len(Compounds)-1
}

func (ComplexSelector) isSelector() {}

// SelectorList is a comma-separated group; it matches when any branch
// matches (selector-list semantics, CSS's implicit ":is()").
type SelectorList struct {
	Selectors []ComplexSelector
}

func (SelectorList) isSelector() {}

// Specificity is the (id, class-or-attr-or-pseudoclass, type-or-pseudoelement)
// triple CSS uses to break cascade ties.
type Specificity struct {
	IDs, Classes, Types int
}

// Less reports whether a sorts before b (lower specificity).
func (a Specificity) Less(b Specificity) bool {
	if a.IDs != b.IDs {
		return a.IDs < b.IDs
	}
	if a.Classes != b.Classes {
		return a.Classes < b.Classes
	}
	return a.Types < b.Types
}

func (a Specificity) add(b Specificity) Specificity {
	return Specificity{a.IDs + b.IDs, a.Classes + b.Classes, a.Types + b.Types}
}

// SpecificityOf computes a selector's specificity. A SelectorList itself
// has no single specificity — callers evaluate the specificity of whichever
// branch actually matched.
func SpecificityOf(sel Selector) Specificity {
	switch s := sel.(type) {
	case CompoundSelector:
		return compoundSpecificity(s)
	case ComplexSelector:
		var total Specificity
		for _, c := range s.Compounds {
			total = total.add(compoundSpecificity(c))
		}
		return total
	default:
		return Specificity{}
	}
}

func compoundSpecificity(c CompoundSelector) Specificity {
	var sp Specificity
	if c.ID != "" {
		sp.IDs++
	}
	sp.Classes += len(c.Classes) + len(c.Attrs) + len(c.PseudoClasses)
	for _, pc := range c.PseudoClasses {
		if pc.Kind == PseudoNot && pc.Not != nil {
			for _, branch := range pc.Not.Selectors {
				bs := SpecificityOf(branch)
				sp.IDs += bs.IDs
				sp.Classes += bs.Classes - 1 // :not() itself already counted as one class above
				sp.Types += bs.Types
			}
		}
	}
	if c.Tag != "" && c.Tag != "*" {
		sp.Types++
	}
	if c.PseudoElement != "" {
		sp.Types++
	}
	return sp
}

// ParseSelectorList parses a comma-separated selector group such as
// "a.link:hover, button[disabled]".
func ParseSelectorList(src string) (SelectorList, bool) {
	groups := splitTopLevelComma(src)
	var list SelectorList
	for _, g := range groups {
		cs, ok := parseComplexSelector(strings.TrimSpace(g))
		if !ok {
			return SelectorList{}, false
		}
		list.Selectors = append(list.Selectors, cs)
	}
	return list, len(list.Selectors) > 0
}

func splitTopLevelComma(s string) []string {
	var out []string
	depth := 0
	last := 0
	for i, c := range s {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[last:i])
				last = i + 1
			}
		}
	}
	out = append(out, s[last:])
	return out
}

func parseComplexSelector(src string) (ComplexSelector, bool) {
	toks := Tokenize(src)
	p := &selParser{toks: toks}
	return p.parseChain()
}

type selParser struct {
	toks []Token
	pos  int
}

func (p *selParser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Type: TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *selParser) next() Token {
	t := p.peek()
	p.pos++
	return t
}

func (p *selParser) parseChain() (ComplexSelector, bool) {
	var chain ComplexSelector
	for {
		p.skipWhitespace(false)
		compound, ok := p.parseCompound()
		if !ok {
			return ComplexSelector{}, false
		}
		chain.Compounds = append(chain.Compounds, compound)
		comb, hasComb := p.parseCombinator()
		if !hasComb {
			break
		}
		chain.Combinators = append(chain.Combinators, comb)
	}
	return chain, true
}

// skipWhitespace consumes whitespace tokens; if combinatorContext is true
// a consumed whitespace run is reported via the return value so the caller
// can distinguish "a b" (descendant) from "a>b" (no intervening space).
func (p *selParser) skipWhitespace(combinatorContext bool) bool {
	saw := false
	for p.peek().Type == TokenWhitespace {
		saw = true
		p.pos++
	}
	return saw
}

func (p *selParser) parseCombinator() (Combinator, bool) {
	sawSpace := p.skipWhitespace(true)
	switch p.peek().Type {
	case TokenDelim:
		switch p.peek().Value {
		case ">":
			p.pos++
			p.skipWhitespace(false)
			return CombinatorDirectChild, true
		case "+":
			p.pos++
			p.skipWhitespace(false)
			return CombinatorAdjacent, true
		case "~":
			p.pos++
			p.skipWhitespace(false)
			return CombinatorGeneralSibling, true
		}
	case TokenEOF:
		return 0, false
	}
	if sawSpace {
		return CombinatorDescendant, true
	}
	return 0, false
}

func (p *selParser) parseCompound() (CompoundSelector, bool) {
	var c CompoundSelector
	matched := false
	for {
		t := p.peek()
		switch {
		case t.Type == TokenIdent:
			c.Tag = t.Value
			p.pos++
			matched = true
		case t.Type == TokenDelim && t.Value == "*":
			c.Tag = "*"
			p.pos++
			matched = true
		case t.Type == TokenHash:
			c.ID = t.Value
			p.pos++
			matched = true
		case t.Type == TokenDelim && t.Value == ".":
			p.pos++
			if p.peek().Type != TokenIdent {
				return CompoundSelector{}, false
			}
			c.Classes = append(c.Classes, p.next().Value)
			matched = true
		case t.Type == TokenLBracket:
			p.pos++
			attr, ok := p.parseAttr()
			if !ok {
				return CompoundSelector{}, false
			}
			c.Attrs = append(c.Attrs, attr)
			matched = true
		case t.Type == TokenColon:
			p.pos++
			if p.peek().Type == TokenColon {
				p.pos++
				if p.peek().Type != TokenIdent {
					return CompoundSelector{}, false
				}
				c.PseudoElement = p.next().Value
				matched = true
				continue
			}
			pc, ok := p.parsePseudoClass()
			if !ok {
				return CompoundSelector{}, false
			}
			c.PseudoClasses = append(c.PseudoClasses, pc)
			matched = true
		default:
			if !matched {
				return CompoundSelector{}, false
			}
			return c, true
		}
	}
}

func (p *selParser) parseAttr() (AttrSelector, bool) {
	if p.peek().Type != TokenIdent {
		return AttrSelector{}, false
	}
	attr := AttrSelector{Name: p.next().Value, Op: AttrExists}
	if p.peek().Type == TokenRBracket {
		p.pos++
		return attr, true
	}
	switch p.peek().Type {
	case TokenDelim:
		op := p.next().Value
		if op == "=" {
			attr.Op = AttrEquals
		} else if p.peek().Type == TokenDelim && p.peek().Value == "=" {
			p.pos++
			switch op {
			case "~":
				attr.Op = AttrInList
			case "|":
				attr.Op = AttrLangish
			case "^":
				attr.Op = AttrPrefix
			case "$":
				attr.Op = AttrSuffix
			case "*":
				attr.Op = AttrSubstr
			default:
				return AttrSelector{}, false
			}
		} else {
			return AttrSelector{}, false
		}
	default:
		return AttrSelector{}, false
	}
	switch p.peek().Type {
	case TokenString, TokenIdent:
		attr.Value = p.next().Value
	default:
		return AttrSelector{}, false
	}
	if p.peek().Type != TokenRBracket {
		return AttrSelector{}, false
	}
	p.pos++
	return attr, true
}

func (p *selParser) parsePseudoClass() (PseudoClass, bool) {
	var name string
	switch p.peek().Type {
	case TokenIdent:
		name = p.next().Value
	case TokenFunction:
		name = p.next().Value
	default:
		return PseudoClass{}, false
	}
	kind, ok := pseudoClassKindOf(name)
	if !ok {
		return PseudoClass{}, false
	}
	pc := PseudoClass{Kind: kind}
	switch kind {
	case PseudoNot:
		depth := 1
		start := p.pos
		for p.pos < len(p.toks) && depth > 0 {
			switch p.toks[p.pos].Type {
			case TokenLParen:
				depth++
			case TokenRParen:
				depth--
				if depth == 0 {
					break
				}
			}
			if depth > 0 {
				p.pos++
			}
		}
		inner := tokensToSource(p.toks[start:p.pos])
		if p.peek().Type == TokenRParen {
			p.pos++
		}
		list, ok := ParseSelectorList(inner)
		if !ok {
			return PseudoClass{}, false
		}
		pc.Not = &list
	case PseudoNthChild, PseudoNthOfType:
		a, b, ok := p.parseNth()
		if !ok {
			return PseudoClass{}, false
		}
		pc.NthA, pc.NthB = a, b
	case PseudoLang:
		if p.peek().Type != TokenIdent && p.peek().Type != TokenString {
			return PseudoClass{}, false
		}
		pc.Lang = p.next().Value
		if p.peek().Type == TokenRParen {
			p.pos++
		}
	}
	return pc, true
}

func tokensToSource(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		switch t.Type {
		case TokenWhitespace:
			b.WriteByte(' ')
		case TokenHash:
			b.WriteString("#" + t.Value)
		case TokenAtKeyword:
			b.WriteString("@" + t.Value)
		case TokenFunction:
			b.WriteString(t.Value + "(")
		case TokenString:
			b.WriteString(strconv.Quote(t.Value))
		case TokenPercentage:
			b.WriteString(t.Value + "%")
		case TokenDimension:
			b.WriteString(strconv.FormatFloat(t.Num, 'f', -1, 64) + t.Value)
		default:
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

// parseNth parses the An+B micro-syntax used by :nth-child()/:nth-of-type().
func (p *selParser) parseNth() (a, b int, ok bool) {
	a, b = 0, 1
	var parts []string
	for p.peek().Type != TokenRParen && p.peek().Type != TokenEOF {
		t := p.next()
		if t.Type != TokenWhitespace {
			parts = append(parts, tokensToSource([]Token{t}))
		}
	}
	if p.peek().Type == TokenRParen {
		p.pos++
	}
	expr := strings.ToLower(strings.Join(parts, ""))
	switch expr {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	}
	if !strings.Contains(expr, "n") {
		n, convOk := atoiSigned(expr)
		return 0, n, convOk
	}
	segs := strings.SplitN(expr, "n", 2)
	aPart := segs[0]
	switch aPart {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		var convOk bool
		a, convOk = atoiSigned(aPart)
		if !convOk {
			return 0, 0, false
		}
	}
	bPart := strings.TrimSpace(segs[1])
	if bPart == "" {
		b = 0
		return a, b, true
	}
	var convOk bool
	b, convOk = atoiSigned(bPart)
	return a, b, convOk
}

func atoiSigned(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func pseudoClassKindOf(name string) (PseudoClassKind, bool) {
	switch strings.ToLower(name) {
	case "hover":
		return PseudoHover, true
	case "focus":
		return PseudoFocus, true
	case "active":
		return PseudoActive, true
	case "visited":
		return PseudoVisited, true
	case "checked":
		return PseudoChecked, true
	case "disabled":
		return PseudoDisabled, true
	case "enabled":
		return PseudoEnabled, true
	case "empty":
		return PseudoEmpty, true
	case "root":
		return PseudoRoot, true
	case "first-child":
		return PseudoFirstChild, true
	case "last-child":
		return PseudoLastChild, true
	case "only-child":
		return PseudoOnlyChild, true
	case "first-of-type":
		return PseudoFirstOfType, true
	case "last-of-type":
		return PseudoLastOfType, true
	case "nth-child":
		return PseudoNthChild, true
	case "nth-of-type":
		return PseudoNthOfType, true
	case "lang":
		return PseudoLang, true
	case "not":
		return PseudoNot, true
	default:
		return 0, false
	}
}

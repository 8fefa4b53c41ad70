package style

import "strings"

// Declaration is one `property: value [!important]` pair. Value is kept
// as source text — the cascade stores raw strings and only the
// computation stage invokes acceptors.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a selector-list paired with its declarations, annotated with
// its originating @media condition (nil if unconditional) and its
// position in source order, used as the cascade's final tie-break.
type Rule struct {
	Selectors   SelectorList
	Declarations []Declaration
	MediaQuery  *MediaQuery
	SourceOrder int
}

// SourceSheet is a fully parsed stylesheet: an ordered list of rules in
// the order they appeared, with @media rules flattened in but tagged with
// their condition so the cascade can filter by viewport.
type SourceSheet struct {
	Rules []Rule
}

// Diagnostic is a non-fatal parse error: the offending rule was skipped
// and parsing resumed at the next rule boundary.
type Diagnostic struct {
	Message string
	Context string
}

// ParseResult bundles a parsed sheet with any diagnostics raised while
// parsing it, per the "emit a diagnostic and skip to the next rule-level
// boundary" error-recovery rule.
type ParseResult struct {
	Sheet       SourceSheet
	Diagnostics []Diagnostic
}

// ParseStylesheet parses a full CSS source string into a SourceSheet,
// recovering from syntax errors by skipping to the next rule boundary.
func ParseStylesheet(src string) ParseResult {
	p := &sheetParser{toks: Tokenize(src)}
	return p.parseTopLevel()
}

type sheetParser struct {
	toks   []Token
	pos    int
	order  int
	result ParseResult
}

func (p *sheetParser) peek() Token {
	p.skipWS()
	if p.pos >= len(p.toks) {
		return Token{Type: TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *sheetParser) skipWS() {
	for p.pos < len(p.toks) && p.toks[p.pos].Type == TokenWhitespace {
		p.pos++
	}
}

func (p *sheetParser) next() Token {
	t := p.peek()
	p.pos++
	return t
}

func (p *sheetParser) parseTopLevel() ParseResult {
	for p.peek().Type != TokenEOF {
		if p.peek().Type == TokenAtKeyword {
			p.parseAtRule(nil)
			continue
		}
		p.parseStyleRule(nil)
	}
	return p.result
}

// parseStyleRule parses "selector-list { declarations }", tagging the
// produced Rule with mq (non-nil inside an @media block).
func (p *sheetParser) parseStyleRule(mq *MediaQuery) {
	start := p.pos
	for p.pos < len(p.toks) && p.toks[p.pos].Type != TokenLBrace && p.toks[p.pos].Type != TokenEOF {
		p.pos++
	}
	if p.pos >= len(p.toks) {
		p.diag("unterminated rule (no '{')", tokensToSource(p.toks[start:p.pos]))
		return
	}
	selectorSrc := tokensToSource(p.toks[start:p.pos])
	selList, ok := ParseSelectorList(selectorSrc)
	p.pos++ // consume '{'
	declStart := p.pos
	p.skipToMatchingBrace()
	declEnd := p.pos
	closed := p.pos < len(p.toks) && p.toks[p.pos].Type == TokenRBrace
	if closed {
		p.pos++
	} else {
		p.diag("unterminated rule (no matching '}')", strings.TrimSpace(selectorSrc))
	}
	if !ok {
		p.diag("invalid selector", strings.TrimSpace(selectorSrc))
		return
	}
	decls := parseDeclarationTokens(p.toks[declStart:declEnd])
	p.result.Sheet.Rules = append(p.result.Sheet.Rules, Rule{
		Selectors:    selList,
		Declarations: decls,
		MediaQuery:   mq,
		SourceOrder:  p.order,
	})
	p.order++
}

// skipToMatchingBrace advances to the '}' matching the '{' already
// consumed, respecting nested braces (so a declaration value containing a
// stray brace does not truncate the block early).
func (p *sheetParser) skipToMatchingBrace() {
	depth := 1
	for p.pos < len(p.toks) {
		switch p.toks[p.pos].Type {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
			if depth == 0 {
				return
			}
		case TokenEOF:
			return
		}
		p.pos++
	}
}

func (p *sheetParser) parseAtRule(outerMQ *MediaQuery) {
	name := strings.ToLower(p.next().Value)
	start := p.pos
	for p.pos < len(p.toks) && p.toks[p.pos].Type != TokenLBrace && p.toks[p.pos].Type != TokenSemicolon && p.toks[p.pos].Type != TokenEOF {
		p.pos++
	}
	prelude := tokensToSource(p.toks[start:p.pos])

	switch {
	case p.pos < len(p.toks) && p.toks[p.pos].Type == TokenSemicolon:
		p.pos++ // @import and similar preludes with no block: recorded as a diagnostic-free no-op, since network fetch is outside this package
		return
	case p.pos >= len(p.toks) || p.toks[p.pos].Type != TokenLBrace:
		p.diag("at-rule missing block or terminator", name)
		return
	}

	p.pos++ // consume '{'
	if name != "media" {
		// Unknown at-rule with a block (@page, @font-face, @keyframes...):
		// skip its contents; only @media's contents feed the cascade.
		p.skipToMatchingBrace()
		if p.pos < len(p.toks) {
			p.pos++
		}
		return
	}

	mq := ParseMediaQuery(prelude)
	if outerMQ != nil {
		mq = intersectMediaQuery(outerMQ, mq)
	}
	for p.peek().Type != TokenRBrace && p.peek().Type != TokenEOF {
		if p.peek().Type == TokenAtKeyword {
			p.parseAtRule(mq)
			continue
		}
		p.parseStyleRule(mq)
	}
	if p.pos < len(p.toks) && p.toks[p.pos].Type == TokenRBrace {
		p.pos++
	}
}

// intersectMediaQuery combines a nested @media with its enclosing one;
// nesting is rare in authored CSS but the grammar permits it.
func intersectMediaQuery(outer, inner *MediaQuery) *MediaQuery {
	combined := &MediaQuery{MediaType: inner.MediaType}
	combined.Conditions = append(combined.Conditions, outer.Conditions...)
	combined.Conditions = append(combined.Conditions, inner.Conditions...)
	return combined
}

func (p *sheetParser) diag(msg, context string) {
	p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{Message: msg, Context: context})
}

// parseDeclarationTokens splits a declaration-block token run on top-level
// semicolons and parses each `property: value` pair, detecting a trailing
// `!important`.
func parseDeclarationTokens(toks []Token) []Declaration {
	var decls []Declaration
	depth := 0
	start := 0
	for i := 0; i <= len(toks); i++ {
		atEnd := i == len(toks)
		if !atEnd {
			switch toks[i].Type {
			case TokenLParen, TokenLBracket, TokenLBrace, TokenFunction:
				depth++
			case TokenRParen, TokenRBracket, TokenRBrace:
				depth--
			}
		}
		if atEnd || (depth == 0 && toks[i].Type == TokenSemicolon) {
			chunk := toks[start:i]
			if d, ok := parseOneDeclaration(chunk); ok {
				decls = append(decls, d)
			}
			start = i + 1
		}
	}
	return decls
}

func parseOneDeclaration(toks []Token) (Declaration, bool) {
	colonIdx := -1
	depth := 0
	for i, t := range toks {
		switch t.Type {
		case TokenLParen, TokenLBracket, TokenFunction:
			depth++
		case TokenRParen, TokenRBracket:
			depth--
		case TokenColon:
			if depth == 0 && colonIdx == -1 {
				colonIdx = i
			}
		}
	}
	if colonIdx == -1 {
		return Declaration{}, false
	}
	property := strings.TrimSpace(tokensToSource(toks[:colonIdx]))
	if property == "" {
		return Declaration{}, false
	}
	valueToks := toks[colonIdx+1:]
	value := strings.TrimSpace(tokensToSource(valueToks))
	important := false
	if idx := strings.LastIndex(strings.ToLower(value), "!important"); idx != -1 {
		rest := strings.TrimSpace(value[idx+len("!important"):])
		if rest == "" {
			important = true
			value = strings.TrimSpace(value[:idx])
			value = strings.TrimSuffix(value, "!")
			value = strings.TrimSpace(value)
		}
	}
	if value == "" {
		return Declaration{}, false
	}
	return Declaration{Property: strings.ToLower(property), Value: value, Important: important}, true
}

// ParseInlineStyle parses the contents of a `style="..."` attribute: split
// on ';', then on the first ':', stripping '!important'. This is the
// simpler path spec'd separately from the full stylesheet grammar since it
// never contains selectors or at-rules.
func ParseInlineStyle(src string) []Declaration {
	var decls []Declaration
	for _, chunk := range strings.Split(src, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		idx := strings.Index(chunk, ":")
		if idx == -1 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(chunk[:idx]))
		val := strings.TrimSpace(chunk[idx+1:])
		important := false
		lower := strings.ToLower(val)
		if strings.HasSuffix(lower, "!important") {
			important = true
			val = strings.TrimSpace(val[:len(val)-len("!important")])
		}
		if prop == "" || val == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: val, Important: important})
	}
	return decls
}

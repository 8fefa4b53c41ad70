package style

import "testing"

func TestTokenizeBasicRule(t *testing.T) {
	toks := Tokenize("div.card { color: red; }")
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == TokenWhitespace {
			continue
		}
		types = append(types, tok.Type)
	}
	want := []TokenType{TokenIdent, TokenDelim, TokenIdent, TokenLBrace, TokenIdent, TokenColon, TokenIdent, TokenSemicolon, TokenRBrace, TokenEOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, types[i], want[i])
		}
	}
}

func TestTokenizeDimensionAndPercentage(t *testing.T) {
	toks := Tokenize("10px 50% -3.5em")
	var dims []Token
	for _, tok := range toks {
		if tok.Type == TokenDimension || tok.Type == TokenPercentage {
			dims = append(dims, tok)
		}
	}
	if len(dims) != 3 {
		t.Fatalf("expected 3 numeric tokens, got %d", len(dims))
	}
	if dims[0].Num != 10 || dims[0].Value != "px" {
		t.Errorf("got %+v", dims[0])
	}
	if dims[1].Num != 50 || dims[1].Type != TokenPercentage {
		t.Errorf("got %+v", dims[1])
	}
	if dims[2].Num != -3.5 || dims[2].Value != "em" {
		t.Errorf("got %+v", dims[2])
	}
}

func TestTokenizeStringAndHash(t *testing.T) {
	toks := Tokenize(`content: "hello"; color: #ff0000;`)
	var str, hash Token
	for _, tok := range toks {
		if tok.Type == TokenString {
			str = tok
		}
		if tok.Type == TokenHash {
			hash = tok
		}
	}
	if str.Value != "hello" {
		t.Errorf("got string %q", str.Value)
	}
	if hash.Value != "ff0000" {
		t.Errorf("got hash %q", hash.Value)
	}
}

func TestTokenizeFunctionAndComment(t *testing.T) {
	toks := Tokenize("/* comment */rgb(1, 2, 3)")
	if toks[0].Type != TokenFunction || toks[0].Value != "rgb" {
		t.Fatalf("expected comment stripped and function first, got %+v", toks[0])
	}
}

package style

import "testing"

func TestResolveLengthSimple(t *testing.T) {
	got := ResolveLength(Length(10), ResolveContext{})
	if got != 10 {
		t.Errorf("got %v", got)
	}
}

func TestResolveLengthPercentage(t *testing.T) {
	got := ResolveLength(Percentage(50), ResolveContext{PercentBasis: 200})
	if got != 100 {
		t.Errorf("got %v", got)
	}
}

func TestCalcAddLengthToPercentage(t *testing.T) {
	// calc(100% - 20px) against a 300px basis: 300 - 20 = 280
	op := BinOp{Left: Percentage(100), Op: OpSub, Right: Length(20)}
	got := ResolveLength(op, ResolveContext{PercentBasis: 300})
	if got != 280 {
		t.Errorf("got %v, want 280", got)
	}
}

func TestCalcMultiplyByNumber(t *testing.T) {
	op := BinOp{Left: Length(10), Op: OpMul, Right: Number(3)}
	got := ResolveLength(op, ResolveContext{})
	if got != 30 {
		t.Errorf("got %v, want 30", got)
	}
}

func TestCalcDivideByNumber(t *testing.T) {
	op := BinOp{Left: Length(30), Op: OpDiv, Right: Number(3)}
	got := ResolveLength(op, ResolveContext{})
	if got != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestParseCalcExprNested(t *testing.T) {
	v, err := acceptLengthPercentage("calc((10px + 20px) * 2)", AcceptorContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ResolveLength(v, ResolveContext{})
	if got != 60 {
		t.Errorf("got %v, want 60", got)
	}
}

func TestAcceptAutoLengthPercentage(t *testing.T) {
	v, err := acceptAutoLengthPercentage("auto", AcceptorContext{})
	if err != nil || !IsAuto(v) {
		t.Fatalf("expected Auto, got %v, err %v", v, err)
	}
	v2, err := acceptAutoLengthPercentage("20px", AcceptorContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l, ok := v2.(Length); !ok || l != 20 {
		t.Errorf("got %v", v2)
	}
}

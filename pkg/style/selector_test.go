package style

import "testing"

func TestParseCompoundSelector(t *testing.T) {
	sel, err := ParseSelector("div.card#main[data-x=foo]:hover")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := sel.(CompoundSelector)
	if !ok {
		t.Fatalf("expected CompoundSelector, got %T", sel)
	}
	if c.Tag != "div" || c.ID != "main" || len(c.Classes) != 1 || c.Classes[0] != "card" {
		t.Errorf("got %+v", c)
	}
	if len(c.Attrs) != 1 || c.Attrs[0].Name != "data-x" || c.Attrs[0].Value != "foo" {
		t.Errorf("got attrs %+v", c.Attrs)
	}
	if len(c.PseudoClasses) != 1 || c.PseudoClasses[0].Kind != PseudoHover {
		t.Errorf("got pseudo %+v", c.PseudoClasses)
	}
}

func TestParseComplexSelectorCombinators(t *testing.T) {
	sel, err := ParseSelector("ul.nav > li.active + li")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chain, ok := sel.(ComplexSelector)
	if !ok {
		t.Fatalf("expected ComplexSelector, got %T", sel)
	}
	if len(chain.Compounds) != 3 {
		t.Fatalf("expected 3 compounds, got %d", len(chain.Compounds))
	}
	if chain.Combinators[0] != CombinatorDirectChild || chain.Combinators[1] != CombinatorAdjacent {
		t.Errorf("got combinators %v", chain.Combinators)
	}
}

func TestParseSelectorListAndInvalid(t *testing.T) {
	sel, err := ParseSelector("a, b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := sel.(SelectorList)
	if !ok || len(list.Selectors) != 2 {
		t.Fatalf("expected 2-branch selector list, got %+v", sel)
	}

	if _, err := ParseSelector("[unterminated"); err == nil {
		t.Fatalf("expected InvalidSelectorError")
	} else if _, ok := err.(*InvalidSelectorError); !ok {
		t.Errorf("expected *InvalidSelectorError, got %T", err)
	}
}

func TestSpecificityOrdering(t *testing.T) {
	tag, _ := ParseSelector("div")
	class, _ := ParseSelector(".card")
	id, _ := ParseSelector("#main")
	tagSp, classSp, idSp := SpecificityOf(tag), SpecificityOf(class), SpecificityOf(id)
	if !tagSp.Less(classSp) {
		t.Errorf("expected tag specificity < class specificity: %+v vs %+v", tagSp, classSp)
	}
	if !classSp.Less(idSp) {
		t.Errorf("expected class specificity < id specificity: %+v vs %+v", classSp, idSp)
	}
}

func TestParseNthChild(t *testing.T) {
	sel, err := ParseSelector("li:nth-child(2n+1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := sel.(CompoundSelector)
	if len(c.PseudoClasses) != 1 {
		t.Fatalf("expected one pseudo-class")
	}
	pc := c.PseudoClasses[0]
	if pc.Kind != PseudoNthChild || pc.NthA != 2 || pc.NthB != 1 {
		t.Errorf("got %+v", pc)
	}
}

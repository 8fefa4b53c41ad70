package style

import "testing"

func TestMatchesTagClassID(t *testing.T) {
	el := &fakeElement{tag: "div", id: "main", classes: []string{"card", "featured"}}
	sel, _ := ParseSelector("div.card#main")
	if !Matches(sel, el) {
		t.Errorf("expected match")
	}
	sel2, _ := ParseSelector("span.card#main")
	if Matches(sel2, el) {
		t.Errorf("expected no match on wrong tag")
	}
}

func TestMatchesAttributeOperators(t *testing.T) {
	el := &fakeElement{tag: "a", attrs: map[string]string{
		"class": "foo bar baz",
		"href":  "https://example.com/page",
		"lang":  "en-US",
	}}
	cases := []struct {
		sel   string
		attr  string
		value string
		want  bool
	}{
		{"[class~=bar]", "", "", true},
		{"[class~=qux]", "", "", false},
		{"[lang|=en]", "", "", true},
		{"[href^=https]", "", "", true},
		{"[href$=page]", "", "", true},
		{"[href*=example]", "", "", true},
	}
	for _, c := range cases {
		sel, err := ParseSelector("a" + c.sel)
		if err != nil {
			t.Fatalf("parse %q: %v", c.sel, err)
		}
		if got := Matches(sel, el); got != c.want {
			t.Errorf("%s: got %v, want %v", c.sel, got, c.want)
		}
	}
}

func TestMatchesCombinators(t *testing.T) {
	grandparent := &fakeElement{tag: "ul", classes: []string{"nav"}}
	parent := &fakeElement{tag: "li", parent: grandparent}
	sibling := &fakeElement{tag: "li", parent: grandparent}
	target := &fakeElement{tag: "a", parent: parent, prev: sibling}

	descendant, _ := ParseSelector("ul.nav a")
	if !Matches(descendant, target) {
		t.Errorf("expected descendant match")
	}

	child, _ := ParseSelector("li > a")
	if !Matches(child, target) {
		t.Errorf("expected direct-child match")
	}

	adjacent, _ := ParseSelector("li + a")
	target.parent = sibling
	if !Matches(adjacent, target) {
		t.Errorf("expected adjacent-sibling match")
	}
}

func TestMatchesNot(t *testing.T) {
	el := &fakeElement{tag: "div", classes: []string{"hidden"}}
	sel, err := ParseSelector("div:not(.hidden)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Matches(sel, el) {
		t.Errorf("expected :not to exclude matching class")
	}
	el2 := &fakeElement{tag: "div", classes: []string{"visible"}}
	if !Matches(sel, el2) {
		t.Errorf("expected :not to admit non-matching class")
	}
}

func TestMatchesNthChild(t *testing.T) {
	el := &fakeElement{tag: "li", index: 3, siblingCount: 5}
	odd, _ := ParseSelector("li:nth-child(odd)")
	if !Matches(odd, el) {
		t.Errorf("expected index 3 to match :nth-child(odd)")
	}
	even, _ := ParseSelector("li:nth-child(even)")
	if Matches(even, el) {
		t.Errorf("expected index 3 not to match :nth-child(even)")
	}
}

package style

import "testing"

func TestComputeInheritance(t *testing.T) {
	parentRaw := RawStyle{"color": {Source: "red"}}
	parent := Compute("div", parentRaw, nil, nil)

	childRaw := RawStyle{} // no color declared: color inherits by default
	child := Compute("span", childRaw, parent, nil)

	if c, ok := child.Get("color").(Color); !ok || c.R != 255 {
		t.Errorf("expected child to inherit red color, got %v", child.Get("color"))
	}
}

func TestComputeGlobalKeywords(t *testing.T) {
	parentRaw := RawStyle{"color": {Source: "blue"}, "background-color": {Source: "blue"}}
	parent := Compute("div", parentRaw, nil, nil)

	raw := RawStyle{
		"color":            {Source: "red"},
		"background-color": {Source: "inherit"},
	}
	cs := Compute("span", raw, parent, nil)
	if c, ok := cs.Get("color").(Color); !ok || c.B != 0 {
		t.Errorf("got color %v", cs.Get("color"))
	}
	// background-color does not inherit by default, but "inherit" forces it to.
	if bg, ok := cs.Get("background-color").(Color); !ok || bg.B != 255 {
		t.Errorf("expected background-color to inherit parent's blue, got %v", cs.Get("background-color"))
	}
}

func TestComputeUnsetFallsBackByInheritance(t *testing.T) {
	parentRaw := RawStyle{"color": {Source: "green"}}
	parent := Compute("div", parentRaw, nil, nil)

	raw := RawStyle{"color": {Source: "unset"}}
	cs := Compute("span", raw, parent, nil)
	if c, ok := cs.Get("color").(Color); !ok || c.G != 128 {
		t.Errorf("expected unset color to inherit green, got %v", cs.Get("color"))
	}
}

func TestComputeCurrentColorDependsOnColorPriorityPass(t *testing.T) {
	raw := RawStyle{
		"color":              {Source: "red"},
		"border-top-color":   {Source: "currentcolor"},
	}
	cs := Compute("div", raw, nil, nil)
	if c, ok := cs.Get("border-top-color").(Color); !ok || c.R != 255 {
		t.Errorf("expected border-top-color to resolve to currentcolor=red, got %v", cs.Get("border-top-color"))
	}
}

func TestComputeBorderWidthZeroedWhenStyleNone(t *testing.T) {
	raw := RawStyle{
		"border-top-style": {Source: "none"},
		"border-top-width": {Source: "5px"},
	}
	cs := Compute("div", raw, nil, nil)
	if w, ok := cs.Get("border-top-width").(Length); !ok || w != 0 {
		t.Errorf("expected border-top-width forced to 0, got %v", cs.Get("border-top-width"))
	}
}

func TestComputeCustomPropertyVarSubstitution(t *testing.T) {
	raw := RawStyle{
		"--brand": {Source: "blue"},
		"color":   {Source: "var(--brand)"},
	}
	cs := Compute("div", raw, nil, nil)
	if c, ok := cs.Get("color").(Color); !ok || c.B != 255 {
		t.Errorf("expected var(--brand) to resolve to blue, got %v", cs.Get("color"))
	}
}

func TestComputeEveryRegisteredPropertyPresent(t *testing.T) {
	cs := Compute("div", RawStyle{}, nil, nil)
	for name := range Registry {
		if cs.Get(name) == nil {
			t.Errorf("expected %s to be present after Compute", name)
		}
	}
}

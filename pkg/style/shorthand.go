package style

import "strings"

// ExpandShorthand splits a shorthand declaration into its longhand
// equivalents. Non-shorthand properties pass through unchanged. Expansion
// happens before declarations are stored in the cascade, so the cascade
// and computation stages only ever see registered longhands and custom
// properties.
func ExpandShorthand(d Declaration) []Declaration {
	if IsCustomProperty(d.Property) {
		return []Declaration{d}
	}
	switch d.Property {
	case "margin":
		return expandDirectional(d, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "padding":
		return expandDirectional(d, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "inset":
		return expandDirectional(d, "top", "right", "bottom", "left")
	case "border-width":
		return expandDirectional(d, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border-style":
		return expandDirectional(d, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	case "border-color":
		return expandDirectional(d, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "border-radius":
		return expandBorderRadius(d)
	case "overflow":
		return expandOverflow(d)
	case "border":
		return expandSmartShorthand(d, []string{"top", "right", "bottom", "left"}, borderComponentAcceptors())
	case "border-top", "border-right", "border-bottom", "border-left":
		side := strings.TrimPrefix(d.Property, "border-")
		return expandSmartShorthand(d, []string{side}, borderComponentAcceptors())
	case "outline":
		return expandOutline(d)
	case "font":
		return expandFont(d)
	case "background":
		return expandBackground(d)
	case "all":
		return expandAll(d)
	default:
		return []Declaration{d}
	}
}

// expandDirectional implements the 1/2/3/4-value directional shorthand
// rule shared by margin, padding, inset, and the per-edge border triples.
func expandDirectional(d Declaration, top, right, bottom, left string) []Declaration {
	parts := splitShorthandValues(d.Value)
	var t, r, b, l string
	switch len(parts) {
	case 1:
		t, r, b, l = parts[0], parts[0], parts[0], parts[0]
	case 2:
		t, r, b, l = parts[0], parts[1], parts[0], parts[1]
	case 3:
		t, r, b, l = parts[0], parts[1], parts[2], parts[1]
	case 4:
		t, r, b, l = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil
	}
	return []Declaration{
		{Property: top, Value: t, Important: d.Important},
		{Property: right, Value: r, Important: d.Important},
		{Property: bottom, Value: b, Important: d.Important},
		{Property: left, Value: l, Important: d.Important},
	}
}

// expandBorderRadius handles "h-radii / v-radii", each side independently
// directional, e.g. "10px 20px / 5px".
func expandBorderRadius(d Declaration) []Declaration {
	sides := strings.SplitN(d.Value, "/", 2)
	h := splitShorthandValues(sides[0])
	v := h
	if len(sides) == 2 {
		v = splitShorthandValues(sides[1])
	}
	hCorners := fourCorners(h)
	vCorners := fourCorners(v)
	if hCorners == nil || vCorners == nil {
		return nil
	}
	names := []string{"top-left", "top-right", "bottom-right", "bottom-left"}
	var out []Declaration
	for i, name := range names {
		out = append(out, Declaration{
			Property:  "border-" + name + "-radius",
			Value:     hCorners[i] + " " + vCorners[i],
			Important: d.Important,
		})
	}
	return out
}

func fourCorners(parts []string) []string {
	switch len(parts) {
	case 1:
		return []string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		return []string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		return []string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		return []string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return nil
	}
}

func expandOverflow(d Declaration) []Declaration {
	parts := splitShorthandValues(d.Value)
	switch len(parts) {
	case 1:
		return []Declaration{
			{Property: "overflow-x", Value: parts[0], Important: d.Important},
			{Property: "overflow-y", Value: parts[0], Important: d.Important},
		}
	case 2:
		return []Declaration{
			{Property: "overflow-x", Value: parts[0], Important: d.Important},
			{Property: "overflow-y", Value: parts[1], Important: d.Important},
		}
	default:
		return nil
	}
}

type componentAcceptor struct {
	property string
	accept   Acceptor
}

func borderComponentAcceptors() []componentAcceptor {
	return []componentAcceptor{
		{"width", acceptBorderWidth},
		{"style", acceptBorderStyle},
		{"color", acceptColor},
	}
}

// expandSmartShorthand dispatches each whitespace-separated token in the
// value to the first not-yet-assigned component that validates it
// (border's width/style/color, applied to one or more sides), rejecting
// the whole declaration if any token is left unassigned.
func expandSmartShorthand(d Declaration, sides []string, components []componentAcceptor) []Declaration {
	tokens := strings.Fields(d.Value)
	assigned := make(map[string]string)
	for _, tok := range tokens {
		placed := false
		for _, comp := range components {
			if _, already := assigned[comp.property]; already {
				continue
			}
			if v, err := comp.accept(tok, AcceptorContext{}); err == nil && v != nil {
				assigned[comp.property] = tok
				placed = true
				break
			}
		}
		if !placed {
			return nil
		}
	}
	var out []Declaration
	for _, side := range sides {
		for _, comp := range components {
			val, ok := assigned[comp.property]
			if !ok {
				continue
			}
			out = append(out, Declaration{
				Property:  "border-" + side + "-" + comp.property,
				Value:     val,
				Important: d.Important,
			})
		}
	}
	return out
}

func expandOutline(d Declaration) []Declaration {
	tokens := strings.Fields(d.Value)
	components := []componentAcceptor{
		{"width", acceptBorderWidth},
		{"style", acceptBorderStyle},
		{"color", acceptColor},
	}
	assigned := make(map[string]string)
	for _, tok := range tokens {
		placed := false
		for _, comp := range components {
			if _, already := assigned[comp.property]; already {
				continue
			}
			if v, err := comp.accept(tok, AcceptorContext{}); err == nil && v != nil {
				assigned[comp.property] = tok
				placed = true
				break
			}
		}
		if !placed {
			return nil
		}
	}
	var out []Declaration
	for _, comp := range components {
		if val, ok := assigned[comp.property]; ok {
			out = append(out, Declaration{Property: "outline-" + comp.property, Value: val, Important: d.Important})
		}
	}
	return out
}

// expandFont is a reduced "font" shorthand: [style] [weight] size[/line-height] family.
func expandFont(d Declaration) []Declaration {
	value := d.Value
	familyIdx := strings.LastIndex(value, " ")
	if familyIdx == -1 {
		return nil
	}
	head := strings.TrimSpace(value[:familyIdx])
	family := strings.TrimSpace(value[familyIdx+1:])
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return nil
	}
	sizeTok := fields[len(fields)-1]
	var style, weight string = "normal", "normal"
	for _, tok := range fields[:len(fields)-1] {
		if v, err := acceptFontStyle(tok, AcceptorContext{}); err == nil && v != nil {
			style = tok
			continue
		}
		if v, err := acceptFontWeight(tok, AcceptorContext{}); err == nil && v != nil {
			weight = tok
		}
	}
	sizeParts := strings.SplitN(sizeTok, "/", 2)
	out := []Declaration{
		{Property: "font-style", Value: style, Important: d.Important},
		{Property: "font-weight", Value: weight, Important: d.Important},
		{Property: "font-size", Value: sizeParts[0], Important: d.Important},
		{Property: "font-family", Value: family, Important: d.Important},
	}
	if len(sizeParts) == 2 {
		out = append(out, Declaration{Property: "line-height", Value: sizeParts[1], Important: d.Important})
	}
	return out
}

// expandBackground is a reduced "background" shorthand: color and/or a
// url()/none image term, in either order.
func expandBackground(d Declaration) []Declaration {
	var out []Declaration
	remaining := d.Value
	lower := strings.ToLower(remaining)
	if idx := strings.Index(lower, "url("); idx != -1 {
		end := strings.Index(remaining[idx:], ")")
		if end == -1 {
			return nil
		}
		imageTok := remaining[idx : idx+end+1]
		out = append(out, Declaration{Property: "background-image", Value: imageTok, Important: d.Important})
		remaining = strings.TrimSpace(remaining[:idx] + remaining[idx+end+1:])
	}
	remaining = strings.TrimSpace(remaining)
	if remaining != "" {
		if v, err := acceptColor(remaining, AcceptorContext{}); err == nil && v != nil {
			out = append(out, Declaration{Property: "background-color", Value: remaining, Important: d.Important})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// expandAll implements the "all" shorthand: only the four global keywords
// are accepted, and they apply to every registered longhand property.
func expandAll(d Declaration) []Declaration {
	val := strings.ToLower(strings.TrimSpace(d.Value))
	switch val {
	case "initial", "inherit", "unset", "revert":
	default:
		return nil
	}
	var out []Declaration
	for name := range Registry {
		out = append(out, Declaration{Property: name, Value: val, Important: d.Important})
	}
	return out
}

// splitShorthandValues splits a shorthand's value on whitespace, but keeps
// function notations like rgb(1, 2, 3) intact as a single token.
func splitShorthandValues(s string) []string {
	var out []string
	depth := 0
	start := -1
	for i, c := range s {
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ' ' || c == '\t':
			if depth == 0 {
				if start != -1 {
					out = append(out, s[start:i])
					start = -1
				}
				continue
			}
		}
		if start == -1 && !(c == ' ' || c == '\t') {
			start = i
		}
	}
	if start != -1 {
		out = append(out, s[start:])
	}
	return out
}

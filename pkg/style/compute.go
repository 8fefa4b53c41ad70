package style

import (
	"log/slog"
	"sort"
	"strings"
)

// ComputedStyle is the fully computed, typed form of an element's style:
// every registered property present, plus any custom properties the
// cascade defined. It is immutable once built — Compute always returns a
// fresh map, and Intern is responsible for sharing equal instances.
type ComputedStyle struct {
	values map[string]Value
	custom map[string]string
}

// Get returns the computed value of prop, or nil if it was never set
// (which should not happen for a registered property after Compute runs).
func (cs *ComputedStyle) Get(prop string) Value {
	if cs == nil {
		return nil
	}
	return cs.values[prop]
}

// Custom returns the raw text of a `--custom-property`, and whether it was
// defined on this style or an ancestor.
func (cs *ComputedStyle) Custom(name string) (string, bool) {
	if cs == nil {
		return "", false
	}
	v, ok := cs.custom[name]
	return v, ok
}

// clone produces a mutable copy used as the scratch builder during Compute.
func (cs *ComputedStyle) clone() *ComputedStyle {
	out := &ComputedStyle{values: make(map[string]Value), custom: make(map[string]string)}
	if cs != nil {
		for k, v := range cs.values {
			out.values[k] = v
		}
		for k, v := range cs.custom {
			out.custom[k] = v
		}
	}
	return out
}

// Equal reports whether two computed styles hold the same values, used by
// the intern pool to detect structurally identical styles.
func (cs *ComputedStyle) Equal(other *ComputedStyle) bool {
	if cs == other {
		return true
	}
	if cs == nil || other == nil {
		return false
	}
	if len(cs.values) != len(other.values) || len(cs.custom) != len(other.custom) {
		return false
	}
	for k, v := range cs.values {
		ov, ok := other.values[k]
		if !ok || Describe(v) != Describe(ov) {
			return false
		}
	}
	for k, v := range cs.custom {
		if other.custom[k] != v {
			return false
		}
	}
	return true
}

// structuralKey builds a deterministic string key for the intern pool: the
// sorted property=value pairs, plus sorted custom properties. Equal styles
// produce identical keys regardless of the order properties were computed
// in (map iteration order is not stable in Go).
func (cs *ComputedStyle) structuralKey() string {
	var b strings.Builder
	keys := make([]string, 0, len(cs.values))
	for k := range cs.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Describe(cs.values[k]))
		b.WriteByte(';')
	}
	ckeys := make([]string, 0, len(cs.custom))
	for k := range cs.custom {
		ckeys = append(ckeys, k)
	}
	sort.Strings(ckeys)
	for _, k := range ckeys {
		b.WriteString(k)
		b.WriteByte('~')
		b.WriteString(cs.custom[k])
		b.WriteByte(';')
	}
	return b.String()
}

// globalKeyword enumerates the four CSS-wide keywords every property
// accepts regardless of its own acceptor.
type globalKeyword int

const (
	notGlobal globalKeyword = iota
	globalInherit
	globalInitial
	globalUnset
	globalRevert
)

func classifyGlobal(raw string) globalKeyword {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inherit":
		return globalInherit
	case "initial":
		return globalInitial
	case "unset":
		return globalUnset
	case "revert":
		return globalRevert
	default:
		return notGlobal
	}
}

// Compute turns a RawStyle into a ComputedStyle against a parent context,
// following the five-step algorithm: resolve priority properties first,
// substitute var() references, handle the four global keywords, invoke
// each property's acceptor (retrying acceptors that report a missing
// dependency once their prerequisite is available), and finally force
// border/outline widths to zero when the matching style is none/hidden.
func Compute(tag string, raw RawStyle, parent *ComputedStyle, logger *slog.Logger) *ComputedStyle {
	if logger == nil {
		logger = slog.Default()
	}
	cs := parent.clone()
	cs.custom = map[string]string{}

	collectCustomProperties(cs, raw, parent)

	order := computationOrder(raw)

	pending := make(map[string]bool, len(order))
	for _, name := range order {
		pending[name] = true
	}

	const maxPasses = 4
	for pass := 0; pass < maxPasses && len(pending) > 0; pass++ {
		for _, name := range order {
			if !pending[name] {
				continue
			}
			ok := computeProperty(tag, name, raw, cs, parent, logger)
			if ok {
				delete(pending, name)
			}
		}
	}
	for name := range pending {
		logger.Warn("style: property never resolved, falling back to initial", "property", name)
		cs.values[name] = initialValueOf(name)
	}

	fillUnsetRegistered(cs, parent)
	enforceBorderWidthZeroing(cs)
	return cs
}

func collectCustomProperties(cs *ComputedStyle, raw RawStyle, parent *ComputedStyle) {
	if parent != nil {
		for k, v := range parent.custom {
			cs.custom[k] = v
		}
	}
	for name, rv := range raw {
		if IsCustomProperty(name) {
			cs.custom[name] = substituteVar(rv.Source, cs)
		}
	}
}

// computationOrder places the priority properties (color, font-size) first
// so acceptors that read them off the in-progress style (currentcolor, em
// units) see a resolved value.
func computationOrder(raw RawStyle) []string {
	var priority, rest []string
	seen := map[string]bool{}
	for _, p := range PriorityProperties() {
		if _, ok := raw[p]; ok {
			priority = append(priority, p)
			seen[p] = true
		}
	}
	for name := range Registry {
		if !seen[name] {
			rest = append(rest, name)
			seen[name] = true
		}
	}
	sort.Strings(rest)
	return append(priority, rest...)
}

func computeProperty(tag, name string, raw RawStyle, cs, parent *ComputedStyle, logger *slog.Logger) bool {
	spec, registered := Registry[name]
	rv, hasRaw := raw[name]

	if !hasRaw {
		return computeUnset(tag, name, spec, registered, cs, parent)
	}
	if rv.Precomputed != nil {
		cs.values[name] = rv.Precomputed
		return true
	}

	substituted := substituteVar(rv.Source, cs)

	switch classifyGlobal(substituted) {
	case globalInherit:
		cs.values[name] = inheritedOrInitial(name, parent, spec)
		return true
	case globalInitial:
		return computeInitial(name, spec, cs)
	case globalUnset:
		return computeUnset(tag, name, spec, registered, cs, parent)
	case globalRevert:
		return computeRevert(tag, name, spec, cs, parent)
	}

	if !registered {
		logger.Warn("style: unrecognized property", "property", name)
		return true
	}
	if strings.HasSuffix(name, "-color") && strings.EqualFold(strings.TrimSpace(substituted), "currentcolor") {
		if c, ok := cs.values["color"].(Color); ok {
			cs.values[name] = c
			return true
		}
	}
	v, err := spec.Accept(substituted, AcceptorContext{Parent: parent})
	if err == ErrMissingDependency {
		return false
	}
	if v == nil {
		logger.Warn("style: invalid value, treating as unset", "property", name, "value", substituted)
		return computeUnset(tag, name, spec, registered, cs, parent)
	}
	cs.values[name] = v
	return true
}

func computeUnset(tag, name string, spec PropertySpec, registered bool, cs, parent *ComputedStyle) bool {
	if registered && spec.Inherits {
		cs.values[name] = inheritedOrInitial(name, parent, spec)
		return true
	}
	return computeInitial(name, spec, cs)
}

func computeRevert(tag, name string, spec PropertySpec, cs, parent *ComputedStyle) bool {
	if spec.Inherits {
		cs.values[name] = inheritedOrInitial(name, parent, spec)
		return true
	}
	if defaults, ok := DefaultTagStyles[tag]; ok {
		if val, ok := defaults[name]; ok {
			v, err := spec.Accept(val, AcceptorContext{Parent: parent})
			if err == nil && v != nil {
				cs.values[name] = v
				return true
			}
		}
	}
	return computeInitial(name, spec, cs)
}

func computeInitial(name string, spec PropertySpec, cs *ComputedStyle) bool {
	cs.values[name] = initialValueOf(name)
	_ = spec
	return true
}

func initialValueOf(name string) Value {
	spec, ok := Registry[name]
	if !ok {
		return Keyword("")
	}
	v, err := spec.Accept(spec.Initial, AcceptorContext{})
	if err != nil || v == nil {
		return Keyword(spec.Initial)
	}
	return v
}

func inheritedOrInitial(name string, parent *ComputedStyle, spec PropertySpec) Value {
	if parent != nil {
		if v := parent.Get(name); v != nil {
			return v
		}
	}
	return initialValueOf(name)
}

// fillUnsetRegistered ensures every registered property is present even if
// it was never touched by computeProperty (e.g. it was absent from raw and
// handled inline rather than through the main loop).
func fillUnsetRegistered(cs *ComputedStyle, parent *ComputedStyle) {
	for name, spec := range Registry {
		if _, ok := cs.values[name]; ok {
			continue
		}
		if spec.Inherits {
			cs.values[name] = inheritedOrInitial(name, parent, spec)
		} else {
			cs.values[name] = initialValueOf(name)
		}
	}
}

// enforceBorderWidthZeroing implements rule 5 of the computation algorithm:
// a border/outline whose style is none or hidden has its width forced to 0
// regardless of what was declared.
func enforceBorderWidthZeroing(cs *ComputedStyle) {
	for _, side := range []string{"top", "right", "bottom", "left"} {
		styleProp := "border-" + side + "-style"
		widthProp := "border-" + side + "-width"
		if kw, ok := cs.values[styleProp].(Keyword); ok && (kw == "none" || kw == "hidden") {
			cs.values[widthProp] = Length(0)
		}
	}
	if kw, ok := cs.values["outline-style"].(Keyword); ok && (kw == "none" || kw == "hidden") {
		cs.values["outline-width"] = Length(0)
	}
}

// substituteVar replaces var(--name) and var(--name, fallback) references
// with the resolved custom property, recursing through nested var() calls.
func substituteVar(raw string, cs *ComputedStyle) string {
	const prefix = "var("
	lower := strings.ToLower(raw)
	idx := strings.Index(lower, prefix)
	if idx == -1 {
		return raw
	}
	depth := 1
	end := idx + len(prefix)
	for end < len(raw) && depth > 0 {
		switch raw[end] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth > 0 {
			end++
		}
	}
	if end >= len(raw) {
		return raw
	}
	inner := raw[idx+len(prefix) : end]
	var name, fallback string
	if commaIdx := strings.Index(inner, ","); commaIdx != -1 {
		name = strings.TrimSpace(inner[:commaIdx])
		fallback = strings.TrimSpace(inner[commaIdx+1:])
	} else {
		name = strings.TrimSpace(inner)
	}
	replacement, ok := cs.Custom(name)
	if !ok {
		replacement = fallback
	}
	result := raw[:idx] + replacement + raw[end+1:]
	return substituteVar(result, cs)
}

package style

import "strings"

// ElementView is the read-only surface the matcher needs from an element
// tree. It is defined here rather than importing pkg/dom so that style has
// no dependency on dom; dom.Element implements this interface structurally.
type ElementView interface {
	Tag() string
	ID() string
	ClassList() []string
	Attr(name string) (string, bool)
	Parent() ElementView
	PrevSibling() ElementView
	IndexAmongSiblings() int     // 1-based position among same-parent element children
	IndexAmongSiblingsOfType() int // 1-based position among same-parent, same-tag children
	SiblingCount() int
	SiblingCountOfType() int
	IsEmpty() bool
	IsRoot() bool
	Lang() string
	PseudoState(name string) bool // hover/focus/active/visited/checked/disabled/enabled
}

// Matches reports whether element satisfies sel. It never mutates
// element or sel, so results are safe to cache per (element, selector)
// as long as the element's matched attributes are unchanged.
func Matches(sel Selector, el ElementView) bool {
	switch s := sel.(type) {
	case CompoundSelector:
		return matchesCompound(s, el)
	case ComplexSelector:
		return matchesChain(s, el)
	case SelectorList:
		for _, branch := range s.Selectors {
			if matchesChain(branch, el) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// MatchingSelector returns the specific branch of sel that matched el, for
// callers (the cascade) that need that branch's own specificity rather than
// a list's undefined aggregate specificity.
func MatchingSelector(sel Selector, el ElementView) (Selector, bool) {
	switch s := sel.(type) {
	case SelectorList:
		for _, branch := range s.Selectors {
			if matchesChain(branch, el) {
				return branch, true
			}
		}
		return nil, false
	default:
		if Matches(sel, el) {
			return sel, true
		}
		return nil, false
	}
}

func matchesChain(chain ComplexSelector, el ElementView) bool {
	if len(chain.Compounds) == 0 {
		return false
	}
	n := len(chain.Compounds)
	if !matchesCompound(chain.Compounds[n-1], el) {
		return false
	}
	cur := el
	for i := n - 2; i >= 0; i-- {
		comb := chain.Combinators[i]
		var ok bool
		cur, ok = advance(cur, comb, chain.Compounds[i])
		if !ok {
			return false
		}
	}
	return true
}

// advance walks from cur across comb looking for an element matching want,
// returning that element so the next (further left) combinator continues
// from it.
func advance(cur ElementView, comb Combinator, want CompoundSelector) (ElementView, bool) {
	switch comb {
	case CombinatorDirectChild:
		p := cur.Parent()
		if p == nil {
			return nil, false
		}
		if matchesCompound(want, p) {
			return p, true
		}
		return nil, false
	case CombinatorDescendant:
		for p := cur.Parent(); p != nil; p = p.Parent() {
			if matchesCompound(want, p) {
				return p, true
			}
		}
		return nil, false
	case CombinatorAdjacent:
		prev := cur.PrevSibling()
		if prev == nil {
			return nil, false
		}
		if matchesCompound(want, prev) {
			return prev, true
		}
		return nil, false
	case CombinatorGeneralSibling:
		for prev := cur.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
			if matchesCompound(want, prev) {
				return prev, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func matchesCompound(c CompoundSelector, el ElementView) bool {
	if c.Tag != "" && c.Tag != "*" && !strings.EqualFold(c.Tag, el.Tag()) {
		return false
	}
	if c.ID != "" && c.ID != el.ID() {
		return false
	}
	if len(c.Classes) > 0 {
		have := el.ClassList()
		for _, want := range c.Classes {
			if !containsClass(have, want) {
				return false
			}
		}
	}
	for _, a := range c.Attrs {
		if !matchesAttr(a, el) {
			return false
		}
	}
	for _, pc := range c.PseudoClasses {
		if !matchesPseudoClass(pc, el) {
			return false
		}
	}
	return true
}

func containsClass(have []string, want string) bool {
	for _, h := range have {
		if h == want {
			return true
		}
	}
	return false
}

func matchesAttr(a AttrSelector, el ElementView) bool {
	val, ok := el.Attr(a.Name)
	if !ok {
		return false
	}
	switch a.Op {
	case AttrExists:
		return true
	case AttrEquals:
		return val == a.Value
	case AttrInList:
		for _, tok := range strings.Fields(val) {
			if tok == a.Value {
				return true
			}
		}
		return false
	case AttrLangish:
		return val == a.Value || strings.HasPrefix(val, a.Value+"-")
	case AttrPrefix:
		return strings.HasPrefix(val, a.Value)
	case AttrSuffix:
		return strings.HasSuffix(val, a.Value)
	case AttrSubstr:
		return strings.Contains(val, a.Value)
	default:
		return false
	}
}

func matchesPseudoClass(pc PseudoClass, el ElementView) bool {
	switch pc.Kind {
	case PseudoHover:
		return el.PseudoState("hover")
	case PseudoFocus:
		return el.PseudoState("focus")
	case PseudoActive:
		return el.PseudoState("active")
	case PseudoVisited:
		return el.PseudoState("visited")
	case PseudoChecked:
		return el.PseudoState("checked")
	case PseudoDisabled:
		return el.PseudoState("disabled")
	case PseudoEnabled:
		return !el.PseudoState("disabled")
	case PseudoEmpty:
		return el.IsEmpty()
	case PseudoRoot:
		return el.IsRoot()
	case PseudoFirstChild:
		return el.IndexAmongSiblings() == 1
	case PseudoLastChild:
		return el.IndexAmongSiblings() == el.SiblingCount()
	case PseudoOnlyChild:
		return el.SiblingCount() == 1
	case PseudoFirstOfType:
		return el.IndexAmongSiblingsOfType() == 1
	case PseudoLastOfType:
		return el.IndexAmongSiblingsOfType() == el.SiblingCountOfType()
	case PseudoNthChild:
		return matchesNth(pc.NthA, pc.NthB, el.IndexAmongSiblings())
	case PseudoNthOfType:
		return matchesNth(pc.NthA, pc.NthB, el.IndexAmongSiblingsOfType())
	case PseudoLang:
		return el.Lang() == pc.Lang || strings.HasPrefix(el.Lang(), pc.Lang+"-")
	case PseudoNot:
		if pc.Not == nil {
			return true
		}
		return !Matches(*pc.Not, el)
	default:
		return false
	}
}

// matchesNth implements the An+B formula: index matches if, for some
// non-negative integer k, index == a*k + b.
func matchesNth(a, b, index int) bool {
	if a == 0 {
		return index == b
	}
	k := index - b
	if k%a != 0 {
		return false
	}
	return k/a >= 0
}

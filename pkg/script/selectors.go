package script

import (
	"wisp/pkg/dom"
	"wisp/pkg/style"
)

// query runs sel against root's subtree in document order, grounded on the
// teacher's dom_selectors.go walkTree helper but matching through
// pkg/style's selector parser/matcher (style.ParseSelectorList already
// handles comma-separated groups, so unlike the teacher's
// SplitSelectorGroup there is only one selector to parse per call).
func query(root *dom.Element, sel string) []*dom.Element {
	list, ok := style.ParseSelectorList(sel)
	if !ok {
		return nil
	}
	var out []*dom.Element
	walk(root, func(el *dom.Element) {
		if el == root || el.IsTextNode {
			return
		}
		if style.Matches(list, el) {
			out = append(out, el)
		}
	})
	return out
}

func walk(el *dom.Element, fn func(*dom.Element)) {
	fn(el)
	for _, c := range el.Children() {
		walk(c, fn)
	}
}

package style

import "fmt"

// InvalidSelectorError is the one error the style package lets propagate
// past its own boundary: a selector string the grammar cannot parse at
// all. Stylesheet-level syntax errors are recovered from internally (see
// ParseStylesheet's Diagnostics) and never reach the caller as an error
// value; a directly API-invoked ParseSelector call has no such recovery
// point to fall back to, so it reports failure explicitly.
type InvalidSelectorError struct {
	Selector string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("style: invalid selector %q", e.Selector)
}

// ParseSelector parses a single selector string (no top-level comma
// required) and returns a typed InvalidSelectorError on failure rather
// than the (Selector, false) idiom ParseSelectorList uses, matching the
// explicit propagation the parser API calls for.
func ParseSelector(src string) (Selector, error) {
	list, ok := ParseSelectorList(src)
	if !ok {
		return nil, &InvalidSelectorError{Selector: src}
	}
	if len(list.Selectors) == 1 {
		if chain := list.Selectors[0]; len(chain.Compounds) == 1 {
			return chain.Compounds[0], nil
		}
		return list.Selectors[0], nil
	}
	return list, nil
}

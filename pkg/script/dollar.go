package script

import (
	"strings"

	"github.com/dop251/goja"

	"wisp/pkg/dom"
)

// registerDollar installs the $(selector) global bound to root, grounded on
// the teacher's pkg/js/dom_selectors.go query logic but wrapped in a
// jQuery-style chainable object rather than exposing raw DOM nodes, per
// SPEC_FULL.md's narrower "jQuery-like $(selector) facade" framing for this
// external collaborator.
func registerDollar(vm *goja.Runtime, root *dom.Element) {
	dollar := func(call goja.FunctionCall) goja.Value {
		sel := call.Argument(0).String()
		matched := query(root, sel)
		return vm.ToValue(newWrapper(vm, matched))
	}
	vm.Set("$", dollar)
}

// wrapper is the object returned by $(selector): a jQuery-style handle onto
// zero or more matched elements, with chainable mutator methods.
type wrapper struct {
	vm  *goja.Runtime
	els []*dom.Element
}

func newWrapper(vm *goja.Runtime, els []*dom.Element) *goja.Object {
	w := &wrapper{vm: vm, els: els}
	obj := vm.NewObject()
	obj.Set("length", len(els))
	obj.Set("get", w.get)
	obj.Set("each", w.each)
	obj.Set("text", w.text)
	obj.Set("attr", w.attr)
	obj.Set("addClass", w.addClass)
	obj.Set("removeClass", w.removeClass)
	obj.Set("toggleClass", w.toggleClass)
	obj.Set("hasClass", w.hasClass)
	obj.Set("on", w.on)
	obj.Set("find", w.find)
	return obj
}

func (w *wrapper) self() goja.Value { return w.vm.ToValue(newWrapper(w.vm, w.els)) }

// get returns the index'th matched element's text content, or "" if out of
// range — there is no raw-node handle to hand back since scripts never see
// *dom.Element directly.
func (w *wrapper) get(call goja.FunctionCall) goja.Value {
	i := int(call.Argument(0).ToInteger())
	if i < 0 || i >= len(w.els) {
		return w.vm.ToValue("")
	}
	return w.vm.ToValue(textContent(w.els[i]))
}

func (w *wrapper) each(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if ok {
		for i, el := range w.els {
			one := w.vm.ToValue(newWrapper(w.vm, []*dom.Element{el}))
			fn(goja.Undefined(), w.vm.ToValue(i), one)
		}
	}
	return w.self()
}

// text reads or sets the matched elements' text content. With no argument
// it returns the first match's text, matching jQuery's getter/setter
// overload on a single method.
func (w *wrapper) text(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		if len(w.els) == 0 {
			return w.vm.ToValue("")
		}
		return w.vm.ToValue(textContent(w.els[0]))
	}
	val := call.Argument(0).String()
	for _, el := range w.els {
		setTextContent(el, val)
	}
	return w.self()
}

func (w *wrapper) attr(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	if len(call.Arguments) < 2 {
		if len(w.els) == 0 {
			return goja.Undefined()
		}
		v, ok := w.els[0].GetAttribute(name)
		if !ok {
			return goja.Undefined()
		}
		return w.vm.ToValue(v)
	}
	val := call.Argument(1).String()
	for _, el := range w.els {
		el.SetAttribute(name, val)
	}
	return w.self()
}

func (w *wrapper) addClass(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	for _, el := range w.els {
		classes := splitClasses(el)
		if !containsClass(classes, name) {
			classes = append(classes, name)
			el.SetAttribute("class", strings.Join(classes, " "))
		}
	}
	return w.self()
}

func (w *wrapper) removeClass(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	for _, el := range w.els {
		classes := splitClasses(el)
		kept := classes[:0]
		for _, c := range classes {
			if c != name {
				kept = append(kept, c)
			}
		}
		el.SetAttribute("class", strings.Join(kept, " "))
	}
	return w.self()
}

func (w *wrapper) toggleClass(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	for _, el := range w.els {
		classes := splitClasses(el)
		if containsClass(classes, name) {
			kept := classes[:0]
			for _, c := range classes {
				if c != name {
					kept = append(kept, c)
				}
			}
			el.SetAttribute("class", strings.Join(kept, " "))
		} else {
			classes = append(classes, name)
			el.SetAttribute("class", strings.Join(classes, " "))
		}
	}
	return w.self()
}

func (w *wrapper) hasClass(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	for _, el := range w.els {
		if containsClass(splitClasses(el), name) {
			return w.vm.ToValue(true)
		}
	}
	return w.vm.ToValue(false)
}

// on wires a handler through dom.Element.AddEventListener, bridging
// pkg/dom's synchronous Listener callback to a goja function value.
func (w *wrapper) on(call goja.FunctionCall) goja.Value {
	typ := dom.EventType(call.Argument(0).String())
	fn, ok := goja.AssertFunction(call.Argument(1))
	if !ok {
		return w.self()
	}
	for _, el := range w.els {
		el.AddEventListener(typ, func(ev *dom.Event) {
			evObj := w.vm.NewObject()
			evObj.Set("type", string(ev.Type))
			evObj.Set("x", ev.X)
			evObj.Set("y", ev.Y)
			fn(goja.Undefined(), evObj)
		})
	}
	return w.self()
}

func (w *wrapper) find(call goja.FunctionCall) goja.Value {
	sel := call.Argument(0).String()
	var out []*dom.Element
	for _, el := range w.els {
		out = append(out, query(el, sel)...)
	}
	return w.vm.ToValue(newWrapper(w.vm, out))
}

func splitClasses(el *dom.Element) []string {
	v, ok := el.GetAttribute("class")
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return strings.Fields(v)
}

func containsClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

// textContent concatenates the text of el's text-node descendants, mirroring
// the teacher's elementTextContent in dom.go.
func textContent(el *dom.Element) string {
	if el.IsTextNode {
		return el.Text()
	}
	var sb strings.Builder
	for _, c := range el.Children() {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// setTextContent replaces el's children with a single text node carrying
// val, matching DOM's textContent setter semantics.
func setTextContent(el *dom.Element, val string) {
	for _, c := range append([]*dom.Element{}, el.Children()...) {
		el.RemoveChild(c)
	}
	el.AppendChild(dom.NewTextNode(val))
}

package script

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"wisp/pkg/dom"
)

func buildDoc() (*dom.Element, *dom.Element, *dom.Element) {
	root := dom.NewElement("html")
	body := dom.NewElement("body")
	root.AppendChild(body)

	p1 := dom.NewElement("p")
	p1.SetAttribute("id", "greeting")
	p1.SetAttribute("class", "msg")
	p1.AppendChild(dom.NewTextNode("hello"))
	body.AppendChild(p1)

	p2 := dom.NewElement("p")
	p2.SetAttribute("class", "msg extra")
	p2.AppendChild(dom.NewTextNode("world"))
	body.AppendChild(p2)

	return root, p1, p2
}

func newEngine() *Engine {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return New(logger)
}

func TestDollarSelectsByID(t *testing.T) {
	root, p1, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		var t = $("#greeting").text();
		globalThis.__result = t;
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := e.vm.Get("__result").String()
	if got != textContent(p1) {
		t.Fatalf("got %q, want %q", got, textContent(p1))
	}
}

func TestDollarSelectsByClassAndCountsMatches(t *testing.T) {
	root, _, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		globalThis.__count = $(".msg").length;
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := e.vm.Get("__count").ToInteger()
	if got != 2 {
		t.Fatalf("got %d matches, want 2", got)
	}
}

func TestDollarTextSetter(t *testing.T) {
	root, p1, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`$("#greeting").text("bye");`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := textContent(p1); got != "bye" {
		t.Fatalf("got %q, want %q", got, "bye")
	}
}

func TestDollarAddRemoveToggleClass(t *testing.T) {
	root, p1, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		$("#greeting").addClass("highlight");
		$("#greeting").removeClass("msg");
		$("#greeting").toggleClass("flag");
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	classes, _ := p1.GetAttribute("class")
	if !strings.Contains(classes, "highlight") {
		t.Fatalf("expected highlight added, got %q", classes)
	}
	if strings.Contains(classes, "msg") {
		t.Fatalf("expected msg removed, got %q", classes)
	}
	if !strings.Contains(classes, "flag") {
		t.Fatalf("expected flag toggled on, got %q", classes)
	}
}

func TestDollarAttrGetSet(t *testing.T) {
	root, p1, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		$("#greeting").attr("data-role", "banner");
		globalThis.__role = $("#greeting").attr("data-role");
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := e.vm.Get("__role").String(); got != "banner" {
		t.Fatalf("got %q, want %q", got, "banner")
	}
	v, ok := p1.GetAttribute("data-role")
	if !ok || v != "banner" {
		t.Fatalf("attribute not set on element: %q, %v", v, ok)
	}
}

func TestDollarOnFiresListenerOnDispatch(t *testing.T) {
	root, p1, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		globalThis.__clicked = false;
		$("#greeting").on("click", function(ev) { globalThis.__clicked = true; });
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	p1.Dispatch(dom.EventClick, 0, 0)
	if !e.vm.Get("__clicked").ToBoolean() {
		t.Fatalf("expected click listener to fire")
	}
}

func TestDollarEachVisitsEveryMatch(t *testing.T) {
	root, _, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		globalThis.__seen = 0;
		$(".msg").each(function(i, el) { globalThis.__seen = globalThis.__seen + 1; });
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := e.vm.Get("__seen").ToInteger(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestDollarFindScopesToDescendants(t *testing.T) {
	root, _, _ := buildDoc()
	e := newEngine()
	err := e.Execute(root, []string{`
		globalThis.__found = $("body").find("#greeting").length;
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := e.vm.Get("__found").ToInteger(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

package resource

import (
	"image"
	"testing"

	"wisp/pkg/dom"
	"wisp/pkg/text"
)

func TestRenderPaintsBackgroundColor(t *testing.T) {
	html := `<html><body><div style="background-color: rgb(255, 0, 0); width: 10px; height: 10px;"></div></body></html>`
	target := image.NewRGBA(image.Rect(0, 0, 50, 50))
	r := NewRenderer(nil, text.NewProvider(nil), nil)
	if err := r.Render(html, target); err != nil {
		t.Fatalf("Render: %v", err)
	}
	c := target.RGBAAt(5, 5)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("expected red pixel at (5,5), got %+v", c)
	}
}

func TestRenderCollectsInlineStylesheet(t *testing.T) {
	html := `<html><head><style>div { background-color: rgb(0, 128, 0); }</style></head>
	<body><div style="width: 10px; height: 10px;"></div></body></html>`
	target := image.NewRGBA(image.Rect(0, 0, 50, 50))
	r := NewRenderer(nil, text.NewProvider(nil), nil)
	if err := r.Render(html, target); err != nil {
		t.Fatalf("Render: %v", err)
	}
	c := target.RGBAAt(5, 5)
	if c.G != 128 {
		t.Fatalf("expected green channel 128 from <style> rule, got %+v", c)
	}
}

type fakeScriptEngine struct {
	called bool
}

func (f *fakeScriptEngine) Execute(root *dom.Element, scripts []string) error {
	f.called = true
	for _, el := range root.IterDescendants() {
		if !el.IsTextNode && el.Tag() == "div" {
			el.SetAttribute("style", "background-color: rgb(0, 0, 255); width: 10px; height: 10px;")
		}
	}
	return nil
}

func TestRenderRunsScriptsAndRepaints(t *testing.T) {
	html := `<html><body><div style="background-color: rgb(255, 0, 0); width: 10px; height: 10px;"></div>
	<script>1;</script></body></html>`
	target := image.NewRGBA(image.Rect(0, 0, 50, 50))
	r := NewRenderer(nil, text.NewProvider(nil), nil)
	engine := &fakeScriptEngine{}
	r.SetScriptEngine(engine)
	if err := r.Render(html, target); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !engine.called {
		t.Fatalf("expected script engine to be invoked")
	}
	c := target.RGBAAt(5, 5)
	if c.B != 255 {
		t.Fatalf("expected blue pixel after script mutation, got %+v", c)
	}
}

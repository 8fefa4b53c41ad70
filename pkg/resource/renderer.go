package resource

import (
	"image"
	"log/slog"
	"strings"

	"wisp/pkg/dom"
	"wisp/pkg/htmlsrc"
	"wisp/pkg/images"
	"wisp/pkg/paint"
	"wisp/pkg/style"
	"wisp/pkg/text"
)

// ScriptEngine mutates a document's DOM by running its collected scripts.
// Matches *script.Engine structurally — resource never imports pkg/script,
// keeping the core's style/layout pipeline decoupled from the JS
// collaborator.
type ScriptEngine interface {
	Execute(root *dom.Element, scripts []string) error
}

// Renderer drives the fetch-parse-cascade-layout-paint pipeline over one
// HTML document, grounded on the teacher's pkg/resource/renderer.go
// Louis14Renderer.
type Renderer struct {
	fetcher Fetcher
	fonts   *text.Provider
	script  ScriptEngine // nil = skip JS execution
	logger  *slog.Logger
}

// NewRenderer creates a Renderer that resolves external stylesheets/images
// through fetcher and measures/draws text through fonts. fetcher may be
// nil: <link> stylesheets and <script src> files are then skipped, and
// images load only from data URIs and the local filesystem.
func NewRenderer(fetcher Fetcher, fonts *text.Provider, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{fetcher: fetcher, fonts: fonts, logger: logger}
}

// SetScriptEngine configures a scripting collaborator. When set, Render
// performs a two-pass render: the first pass lays out and paints the
// initial DOM, then scripts run and mutate it, then a second cascade+
// layout+paint pass produces the final image — matching the teacher's
// "first pass, JS mutate, second pass" flow.
func (r *Renderer) SetScriptEngine(engine ScriptEngine) {
	r.script = engine
}

// Render parses htmlContent, fetches and cascades its stylesheets, lays it
// out against target's dimensions, and paints it onto target.
func (r *Renderer) Render(htmlContent string, target *image.RGBA) error {
	bounds := target.Bounds()
	vp := style.Viewport{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}

	raw, err := htmlsrc.ParseHTML(strings.NewReader(htmlContent))
	if err != nil {
		return err
	}
	root := dom.BuildTree(raw)

	sheets, scripts := r.collect(root)

	var imgCache *images.Cache
	if r.fetcher != nil {
		imgCache = images.NewCache(r.fetchImage)
	} else {
		imgCache = images.NewCache(nil)
	}

	pool := style.NewPool()
	r.layoutAndPaint(root, sheets, vp, pool, imgCache, target)

	if r.script != nil && len(scripts) > 0 {
		if err := r.script.Execute(root, scripts); err != nil {
			r.logger.Error("script execution failed", "err", err)
		}
		r.layoutAndPaint(root, sheets, vp, pool, imgCache, target)
	}

	return nil
}

func (r *Renderer) layoutAndPaint(root *dom.Element, sheets []style.SourceSheet, vp style.Viewport, pool *style.Pool, imgCache *images.Cache, target *image.RGBA) {
	root.Compute(sheets, vp, pool)
	metrics := &text.Metrics{Provider: r.fonts}
	root.Layout(vp.Width, vp.Height, metrics)

	surf := paint.NewContextSurfaceForImage(target)
	painter := &paint.Painter{Surface: surf, Fonts: r.fonts, Images: imgCache}
	painter.Paint(root.Box, 0, 0)
}

// collect walks the parsed tree for <style>/<link rel=stylesheet> and
// <script> content, grounded on the teacher's Document.Stylesheets/Scripts
// fields populated during parsing — here done as a post-parse walk since
// htmlsrc.ParseHTML only produces the raw (tag, attrs, text, children)
// shape spec.md section 6 calls for, with no CSS/JS extraction built in.
func (r *Renderer) collect(root *dom.Element) ([]style.SourceSheet, []string) {
	var sheets []style.SourceSheet
	var scripts []string

	var walk func(*dom.Element)
	walk = func(el *dom.Element) {
		if el.IsTextNode {
			return
		}
		switch el.Tag() {
		case "style":
			if css := elementText(el); css != "" {
				sheets = append(sheets, parseSheet(css, r.logger))
			}
		case "link":
			if rel, _ := el.GetAttribute("rel"); strings.EqualFold(rel, "stylesheet") {
				if href, ok := el.GetAttribute("href"); ok && r.fetcher != nil {
					css, err := r.fetchCSS(href)
					if err != nil {
						r.logger.Warn("fetching stylesheet", "href", href, "err", err)
					} else {
						sheets = append(sheets, parseSheet(css, r.logger))
					}
				}
			}
		case "script":
			if src, ok := el.GetAttribute("src"); ok && r.fetcher != nil {
				body, err := r.fetchText(src)
				if err != nil {
					r.logger.Warn("fetching script", "src", src, "err", err)
				} else {
					scripts = append(scripts, body)
				}
			} else if inline := elementText(el); strings.TrimSpace(inline) != "" {
				scripts = append(scripts, inline)
			}
		}
		for _, c := range el.Children() {
			walk(c)
		}
	}
	walk(root)
	return sheets, scripts
}

func (r *Renderer) fetchCSS(uri string) (string, error) {
	if df, ok := r.fetcher.(*DefaultFetcher); ok {
		return df.FetchCSS(uri)
	}
	body, _, err := r.fetcher.Fetch(uri)
	return string(body), err
}

func (r *Renderer) fetchImage(uri string) ([]byte, error) {
	if df, ok := r.fetcher.(*DefaultFetcher); ok {
		return df.FetchImage(uri)
	}
	body, _, err := r.fetcher.Fetch(uri)
	return body, err
}

func (r *Renderer) fetchText(uri string) (string, error) {
	if df, ok := r.fetcher.(*DefaultFetcher); ok {
		return df.FetchText(uri)
	}
	body, _, err := r.fetcher.Fetch(uri)
	return string(body), err
}

func elementText(el *dom.Element) string {
	var sb strings.Builder
	for _, c := range el.Children() {
		if c.IsTextNode {
			sb.WriteString(c.Text())
		}
	}
	return sb.String()
}

func parseSheet(css string, logger *slog.Logger) style.SourceSheet {
	result := style.ParseStylesheet(css)
	for _, d := range result.Diagnostics {
		logger.Warn("css parse diagnostic", "message", d.Message, "context", d.Context)
	}
	return result.Sheet
}

// Package host implements the window/event-loop external collaborator: the
// frame loop, file-watch hot reload, and navigation history a windowed
// browser shell needs around the style/layout/paint core. Grounded on
// cmd/l14/main.go's Fyne event-driven update closure, generalized into an
// explicit frame function instead of being embedded inline in main.
package host

import (
	"context"
	"time"

	"wisp/pkg/dom"
	"wisp/pkg/layout"
	"wisp/pkg/paint"
	"wisp/pkg/style"
)

type inputKind int

const (
	inputPointerMove inputKind = iota
	inputPointerDown
	inputPointerUp
	inputFocus
)

type inputEvent struct {
	kind   inputKind
	x, y   float64
	target *dom.Element
}

// Loop drives the five-step frame function spec.md section 5 describes:
// drain input, recascade if dirty, relayout if dirty, paint, sleep to
// budget. It owns the dynamic state (hover/active/focus targets) the
// pkg/dom event helpers need across frames.
type Loop struct {
	Root        *dom.Element
	Sheets      []style.SourceSheet
	Viewport    style.Viewport
	Pool        *style.Pool
	Metrics     layout.FontMetrics
	Painter     *paint.Painter
	FrameBudget time.Duration

	// AfterPaint, if set, runs at the end of every frame, after paint — a
	// host uses it to push the surface to screen.
	AfterPaint func()

	input  chan inputEvent
	hover  *dom.Element
	active *dom.Element
	focus  *dom.Element
}

// NewLoop creates a Loop with a reasonable input queue depth.
func NewLoop(root *dom.Element, sheets []style.SourceSheet, vp style.Viewport, pool *style.Pool, metrics layout.FontMetrics, painter *paint.Painter, frameBudget time.Duration) *Loop {
	return &Loop{
		Root:        root,
		Sheets:      sheets,
		Viewport:    vp,
		Pool:        pool,
		Metrics:     metrics,
		Painter:     painter,
		FrameBudget: frameBudget,
		input:       make(chan inputEvent, 64),
	}
}

// PostPointerMove queues a pointer-move event for the next frame's input
// drain. Safe to call from another goroutine (e.g. a Fyne input callback).
func (l *Loop) PostPointerMove(x, y float64) {
	l.post(inputEvent{kind: inputPointerMove, x: x, y: y})
}

// PostPointerDown queues a pointer-down event.
func (l *Loop) PostPointerDown(x, y float64) {
	l.post(inputEvent{kind: inputPointerDown, x: x, y: y})
}

// PostPointerUp queues a pointer-up event.
func (l *Loop) PostPointerUp(x, y float64) {
	l.post(inputEvent{kind: inputPointerUp, x: x, y: y})
}

// PostFocus queues a focus change to target (nil clears focus).
func (l *Loop) PostFocus(target *dom.Element) {
	l.post(inputEvent{kind: inputFocus, target: target})
}

func (l *Loop) post(ev inputEvent) {
	select {
	case l.input <- ev:
	default:
		// Input queue full: drop the oldest pending event rather than
		// block the caller's goroutine, matching a frame loop's
		// tolerance for occasional dropped pointer samples.
		select {
		case <-l.input:
		default:
		}
		l.input <- ev
	}
}

// Run drives frame() on a ticker until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.FrameBudget)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.frame()
		}
	}
}

// frame is the explicit five-step function: drain input, recascade if
// dirty, relayout if dirty, paint, (sleep to budget is the caller's
// ticker). Recascade and relayout are skipped when nothing is dirty; paint
// runs on every frame.
func (l *Loop) frame() {
	l.drainInput()

	if l.Root.StyleDirty {
		l.Root.Compute(l.Sheets, l.Viewport, l.Pool)
	}
	if l.Root.LayoutDirty || l.Root.Box == nil {
		l.Root.Layout(l.Viewport.Width, l.Viewport.Height, l.Metrics)
	}

	l.Painter.Paint(l.Root.Box, 0, 0)
	if l.AfterPaint != nil {
		l.AfterPaint()
	}
}

func (l *Loop) drainInput() {
	for {
		select {
		case ev := <-l.input:
			l.handle(ev)
		default:
			return
		}
	}
}

func (l *Loop) handle(ev inputEvent) {
	switch ev.kind {
	case inputPointerMove:
		l.hover = dom.HandlePointerMove(l.Root, l.hover, ev.x, ev.y)
	case inputPointerDown:
		l.active = dom.HandlePointerDown(l.Root, ev.x, ev.y)
	case inputPointerUp:
		dom.HandlePointerUp(l.Root, l.active, ev.x, ev.y)
		l.active = nil
	case inputFocus:
		dom.HandleFocus(l.focus, ev.target)
		l.focus = ev.target
	}
}

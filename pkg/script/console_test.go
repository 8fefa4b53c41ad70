package script

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleLogRoutesThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := New(logger)

	if err := e.Execute(nil, []string{`console.log("hello", "world");`}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "hello world") {
		t.Fatalf("expected log output to contain %q, got %q", "hello world", out)
	}
}

func TestConsoleWarnAndErrorUseDistinctLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := New(logger)

	err := e.Execute(nil, []string{`
		console.warn("careful");
		console.error("broken");
	`})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "careful") {
		t.Fatalf("expected WARN level with message, got %q", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "broken") {
		t.Fatalf("expected ERROR level with message, got %q", out)
	}
}

package mdrender

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-mdrender/internal/logging"
)

func newTestModule(t *testing.T, mutate func(*Config)) *Module {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Logging.Provider = "noop"
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestModuleRenderSafeOutput(t *testing.T) {
	module := newTestModule(t, nil)

	input := strings.Join([]string{
		"Hello <script>alert('xss')</script>",
		"",
		"[docs](https://example.com) and [evil](javascript:alert(1))",
		"",
		"```go",
		"fmt.Println(\"hi\")",
		"```",
		"",
		"| Name | Role |",
		"| --- | --- |",
		"| Ada | Engineer |",
	}, "\n")

	html, err := module.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Fatalf("raw script tag survived rendering: %q", html)
	}
	if !strings.Contains(html, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">docs</a>`) {
		t.Fatalf("expected safe link with anchor policy, got %q", html)
	}
	if strings.Contains(html, "javascript:") && strings.Contains(html, "href=") {
		t.Fatalf("unsafe scheme reached an href: %q", html)
	}
	if !strings.Contains(html, `<div class="code-block-wrapper"><pre><code class="language-go">`) {
		t.Fatalf("expected wrapped code block, got %q", html)
	}
	if !strings.Contains(html, `<div class="table-wrapper"><table>`) {
		t.Fatalf("expected wrapped table, got %q", html)
	}
}

func TestModuleRenderIsTotalForMalformedInput(t *testing.T) {
	module := newTestModule(t, nil)

	inputs := []string{
		"",
		"```js\nnever closed",
		"**unbalanced *markers",
		"| lonely | header |",
		"[dangling](http://example.com",
	}
	for _, input := range inputs {
		if _, err := module.Render(context.Background(), input); err != nil {
			t.Fatalf("expected fail-soft rendering for %q, got %v", input, err)
		}
	}
}

func TestModuleGoldmarkEngine(t *testing.T) {
	module := newTestModule(t, func(cfg *Config) {
		cfg.Render.Engine = EngineGoldmark
	})

	html, err := module.Render(context.Background(), "~~removed~~ and [e](javascript:alert(1))")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<del>removed</del>") {
		t.Fatalf("expected strikethrough extension active, got %q", html)
	}
	if strings.Contains(html, "javascript:") {
		t.Fatalf("unsafe scheme survived sanitisation: %q", html)
	}
}

func TestNewToleratesUnrecognisedLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("expected unrecognised level to fall back to verbose logging, got %v", err)
	}
	if module.Loggers() == nil {
		t.Fatalf("expected logger provider despite unrecognised level")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Engine = "pandoc"

	if _, err := New(cfg); !errors.Is(err, ErrEngineUnknown) {
		t.Fatalf("expected ErrEngineUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = ""
	if _, err := New(cfg); !errors.Is(err, ErrMarkdownContentDirRequired) {
		t.Fatalf("expected ErrMarkdownContentDirRequired, got %v", err)
	}
}

func TestModuleMarkdownService(t *testing.T) {
	module := newTestModule(t, nil)
	if module.Markdown() != nil {
		t.Fatalf("expected markdown service to be nil when disabled")
	}

	module = newTestModule(t, func(cfg *Config) {
		cfg.Markdown.Enabled = true
		cfg.Markdown.ContentDir = "internal/markdown/testdata"
	})
	if module.Markdown() == nil {
		t.Fatalf("expected markdown service when enabled")
	}

	doc, err := module.Markdown().Load(context.Background(), "basic.md", LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(string(doc.BodyHTML), "<h1>Sample Document</h1>") {
		t.Fatalf("expected rendered document body, got %q", string(doc.BodyHTML))
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if id := logging.RequestIDFromContext(ctx); id != "req-123" {
		t.Fatalf("expected explicit request id, got %q", id)
	}

	ctx = WithRequestID(context.Background(), "")
	id := logging.RequestIDFromContext(ctx)
	if id == "" {
		t.Fatalf("expected generated request id")
	}
	if !strings.Contains(id, "-") {
		t.Fatalf("expected <epoch>-<random> shape, got %q", id)
	}
}

func TestModuleAccessors(t *testing.T) {
	module := newTestModule(t, nil)

	if module.Renderer() == nil {
		t.Fatalf("expected renderer accessor to be populated")
	}
	if module.Loggers() == nil {
		t.Fatalf("expected logger provider accessor to be populated")
	}
	if module.RequestID() == nil {
		t.Fatalf("expected request id holder accessor to be populated")
	}
}

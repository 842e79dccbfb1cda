package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

// Goldmark implements interfaces.Renderer on top of the goldmark engine for
// callers that want full GFM breadth over the audited pipeline. Raw HTML
// pass-through is never enabled and every conversion is scrubbed through a
// bluemonday policy, so injected markup stays neutralised on this engine too.
type Goldmark struct {
	defaults interfaces.RenderOptions
	policy   *bluemonday.Policy
}

var _ interfaces.Renderer = (*Goldmark)(nil)

// NewGoldmark constructs the goldmark-backed renderer with GFM defaults.
func NewGoldmark(defaults interfaces.RenderOptions) *Goldmark {
	return &Goldmark{
		defaults: defaults,
		policy:   htmlPolicy(),
	}
}

// Render satisfies interfaces.Renderer using the engine's default options.
func (g *Goldmark) Render(markdown []byte) ([]byte, error) {
	return g.RenderWithOptions(markdown, g.defaults)
}

// RenderWithOptions converts Markdown into sanitised HTML using the provided
// options.
func (g *Goldmark) RenderWithOptions(markdown []byte, opts interfaces.RenderOptions) ([]byte, error) {
	engine := newGoldmarkEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return g.policy.SanitizeBytes(buf.Bytes()), nil
}

// htmlPolicy derives the sanitisation policy from bluemonday's user
// generated content baseline, extended to keep code-fence language classes
// and to enforce the new-tab / no-referrer anchor policy.
func htmlPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("code")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// newGoldmarkEngine builds a goldmark.Markdown configured from the supplied
// options. Unsupported extension names are ignored; raw HTML stays escaped.
func newGoldmarkEngine(opts interfaces.RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

package render

import (
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

// ErrRenderFailed marks the only hard failure class: an unexpected internal
// fault surfaced while rendering. Malformed input never produces it; the
// pipeline degrades malformed constructs to literal escaped text instead.
var ErrRenderFailed = errors.New("render: markdown rendering failed")

// Safe implements interfaces.Renderer with the bespoke escaping pipeline.
// The renderer is stateless so callers can reuse a single instance across
// goroutines without additional locking.
type Safe struct {
	defaults interfaces.RenderOptions
	scrub    *bluemonday.Policy
}

var _ interfaces.Renderer = (*Safe)(nil)

// NewSafe constructs the default renderer. The supplied options apply to
// every Render call and can be overridden per invocation through
// RenderWithOptions.
func NewSafe(defaults interfaces.RenderOptions) *Safe {
	return &Safe{
		defaults: defaults,
		scrub:    scrubPolicy(),
	}
}

// Render converts Markdown into HTML using the renderer's default options.
func (r *Safe) Render(markdown []byte) ([]byte, error) {
	return r.RenderWithOptions(markdown, r.defaults)
}

// RenderWithOptions converts Markdown into HTML. The call is total: any
// input yields a complete HTML string. A recovered internal fault surfaces
// as ErrRenderFailed rather than partially-escaped output. When
// opts.Sanitize is set the assembled output additionally passes through a
// bluemonday policy restricted to the markup this pipeline emits.
func (r *Safe) RenderWithOptions(markdown []byte, opts interfaces.RenderOptions) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrRenderFailed, rec)
		}
	}()

	blocks := parseBlocks(string(markdown))
	html := []byte(assembleBlocks(blocks, opts))
	if opts.Sanitize {
		html = r.scrub.SanitizeBytes(html)
	}
	return html, nil
}

// scrubPolicy admits exactly the elements and attributes the assembler
// emits: wrapper divs with their class hook, language classes on code, and
// the fixed target/rel pair on anchors. Everything outside that surface is
// stripped.
func scrubPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("class").OnElements("code", "div")
	p.AllowAttrs("target", "rel").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	return p
}

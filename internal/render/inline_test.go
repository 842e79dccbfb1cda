package render

import (
	"strings"
	"testing"
)

func TestRenderInlineLink(t *testing.T) {
	got := renderInline("see [docs](https://example.com/guide)")

	want := `<a href="https://example.com/guide" target="_blank" rel="noopener noreferrer">docs</a>`
	if !strings.Contains(got, want) {
		t.Fatalf("expected anchor %q in %q", want, got)
	}
}

func TestRenderInlineLinkEscapesLabelAndURL(t *testing.T) {
	got := renderInline(`[<b>click</b>](https://example.com/?a=1&b=2)`)

	if strings.Contains(got, "<b>") {
		t.Fatalf("label markup must be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;click&lt;/b&gt;") {
		t.Fatalf("expected escaped label, got %q", got)
	}
	if !strings.Contains(got, `href="https://example.com/?a=1&amp;b=2"`) {
		t.Fatalf("expected attribute-escaped URL, got %q", got)
	}
}

func TestRenderInlineRejectsUnsafeSchemes(t *testing.T) {
	cases := []string{
		"[x](javascript:alert(1))",
		"[x](vbscript:foo)",
		"[x](data:text/html;base64,AAAA)",
		"![x](javascript:alert(1))",
	}

	for _, src := range cases {
		got := renderInline(src)
		if strings.Contains(got, "<a ") || strings.Contains(got, "<img ") {
			t.Fatalf("unsafe URL must not become a live attribute: %q -> %q", src, got)
		}
		if strings.Contains(got, "href=") || strings.Contains(got, "src=") {
			t.Fatalf("expected construct rendered as literal text: %q -> %q", src, got)
		}
	}
}

func TestRenderInlineAllowsRelativeAndMailto(t *testing.T) {
	if got := renderInline("[rel](/path/to/page)"); !strings.Contains(got, `href="/path/to/page"`) {
		t.Fatalf("relative URL should be allowed, got %q", got)
	}
	if got := renderInline("[mail](mailto:team@example.com)"); !strings.Contains(got, `href="mailto:team@example.com"`) {
		t.Fatalf("mailto URL should be allowed, got %q", got)
	}
}

func TestRenderInlineImage(t *testing.T) {
	got := renderInline("![a logo](https://example.com/logo.png)")

	want := `<img src="https://example.com/logo.png" alt="a logo">`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, "</img>") {
		t.Fatalf("image element must be self-contained, got %q", got)
	}
}

func TestRenderInlineEmphasis(t *testing.T) {
	got := renderInline("**b** *i*")

	if !strings.Contains(got, "<strong>b</strong>") {
		t.Fatalf("expected strong element in %q", got)
	}
	if !strings.Contains(got, "<em>i</em>") {
		t.Fatalf("expected em element in %q", got)
	}
}

func TestRenderInlineNestedEmphasis(t *testing.T) {
	got := renderInline("**bold *it***")

	if !strings.Contains(got, "<strong>bold <em>it</em></strong>") {
		t.Fatalf("expected nested emphasis in %q", got)
	}
}

func TestRenderInlineUnbalancedMarkersStayLiteral(t *testing.T) {
	got := renderInline("a * lone star and `open code")

	if strings.Contains(got, "<em>") || strings.Contains(got, "<code>") {
		t.Fatalf("unbalanced markers must stay literal, got %q", got)
	}
}

func TestRenderInlineCodeNeutralisesMarkup(t *testing.T) {
	got := renderInline("Use `<script>` tag")

	if !strings.Contains(got, "<code>&lt;script&gt;</code>") {
		t.Fatalf("expected escaped script inside code element, got %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("live script tag leaked: %q", got)
	}
}

func TestRenderInlineCodeIsNotParsedAsMarkdown(t *testing.T) {
	got := renderInline("`**not bold** [not](a-link)`")

	if strings.Contains(got, "<strong>") || strings.Contains(got, "<a ") {
		t.Fatalf("code span content must not be interpreted, got %q", got)
	}
}

func TestRenderInlinePlainTextEscapedOnce(t *testing.T) {
	got := renderInline("5 &lt; 6 and <tag>")

	if !strings.Contains(got, "&amp;lt;") {
		t.Fatalf("entity-like text should be escaped exactly once, got %q", got)
	}
	if strings.Contains(got, "&amp;amp;") {
		t.Fatalf("double escaping detected: %q", got)
	}
	if !strings.Contains(got, "&lt;tag&gt;") {
		t.Fatalf("expected escaped literal tag, got %q", got)
	}
}

package render

import "strings"

// textEscaper rewrites HTML-significant characters into entity references so
// the result can never be parsed as a tag, attribute boundary, or script
// context. It is applied exactly once, at the point raw text becomes inline
// content; already-built HTML fragments are never passed back through it.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText neutralises raw text for use as HTML element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr neutralises raw text for use inside a double-quoted HTML
// attribute value. The replacement set matches EscapeText; the separate name
// keeps call sites honest about which context they are emitting into.
func EscapeAttr(s string) string {
	return textEscaper.Replace(s)
}

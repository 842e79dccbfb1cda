package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

// Wrapper class names exposed for downstream styling and copy-button hooks.
const (
	CodeWrapperClass  = "code-block-wrapper"
	TableWrapperClass = "table-wrapper"
)

// assembleBlocks renders each block and joins the results. Everything
// arriving here is already escaped; assembly is pure concatenation.
func assembleBlocks(blocks []block, opts interfaces.RenderOptions) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b, opts))
	}
	return strings.Join(parts, "\n")
}

func renderBlock(b block, opts interfaces.RenderOptions) string {
	switch b.kind {
	case blockCode:
		return wrapCode(renderCode(b))
	case blockTable:
		return wrapTable(renderTable(b))
	case blockHeading:
		tag := "h" + strconv.Itoa(b.level)
		return "<" + tag + ">" + renderInline(b.lines[0]) + "</" + tag + ">"
	case blockQuote:
		return "<blockquote><p>" + renderLines(b.lines, opts) + "</p></blockquote>"
	case blockList:
		return renderList(b)
	case blockRule:
		return "<hr>"
	default:
		return "<p>" + renderLines(b.lines, opts) + "</p>"
	}
}

// wrapCode and wrapTable attach the container elements that give themes and
// copy buttons a stable hook. No other block kinds receive wrappers.
func wrapCode(inner string) string {
	return `<div class="` + CodeWrapperClass + `">` + inner + `</div>`
}

func wrapTable(inner string) string {
	return `<div class="` + TableWrapperClass + `">` + inner + `</div>`
}

// renderCode emits the pre/code pair for a fenced block. The language tag is
// escaped verbatim into a language-<tag> class; the content is escaped and
// never interpreted as further Markdown or raw HTML.
func renderCode(b block) string {
	var out strings.Builder
	out.WriteString("<pre><code")
	if b.lang != "" {
		out.WriteString(` class="language-` + EscapeAttr(b.lang) + `"`)
	}
	out.WriteString(">")
	if len(b.lines) > 0 {
		out.WriteString(EscapeText(strings.Join(b.lines, "\n")))
		out.WriteString("\n")
	}
	out.WriteString("</code></pre>")
	return out.String()
}

// renderTable emits thead/tbody markup. Data rows are normalised to the
// header's cell count so column order stays stable for styling.
func renderTable(b block) string {
	var out strings.Builder
	out.WriteString("<table><thead><tr>")
	for _, cell := range b.header {
		out.WriteString("<th>" + renderInline(cell) + "</th>")
	}
	out.WriteString("</tr></thead><tbody>")
	for _, row := range b.rows {
		out.WriteString("<tr>")
		for i := range b.header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			out.WriteString("<td>" + renderInline(cell) + "</td>")
		}
		out.WriteString("</tr>")
	}
	out.WriteString("</tbody></table>")
	return out.String()
}

func renderList(b block) string {
	tag := "ul"
	if b.ordered {
		tag = "ol"
	}
	var out strings.Builder
	out.WriteString("<" + tag + ">")
	for _, item := range b.lines {
		out.WriteString("<li>" + renderInline(item) + "</li>")
	}
	out.WriteString("</" + tag + ">")
	return out.String()
}

// renderLines joins a block's lines, inline-rendering each one. Hard wraps
// turn interior newlines into <br> elements.
func renderLines(lines []string, opts interfaces.RenderOptions) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderInline(line))
	}
	sep := "\n"
	if opts.HardWraps {
		sep = "<br>\n"
	}
	return strings.Join(rendered, sep)
}

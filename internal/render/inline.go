package render

import "strings"

// Anchors always open in a new tab and drop the opener/referrer relationship.
// This is a fixed policy, not user-configurable.
const anchorPolicy = ` target="_blank" rel="noopener noreferrer"`

// renderInline converts inline Markdown within a paragraph or table cell into
// HTML. Recognised constructs are, in precedence order: inline code, images,
// links, strong emphasis, emphasis. Everything else is literal text routed
// through the escaper exactly once.
func renderInline(s string) string {
	var out strings.Builder
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			out.WriteString(EscapeText(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch {
		case s[i] == '`':
			if code, next, ok := scanInlineCode(s, i); ok {
				flush()
				out.WriteString(code)
				i = next
				continue
			}
		case s[i] == '!' && i+1 < len(s) && s[i+1] == '[':
			if img, next, ok := scanImage(s, i); ok {
				flush()
				out.WriteString(img)
				i = next
				continue
			}
		case s[i] == '[':
			if anchor, next, ok := scanLink(s, i); ok {
				flush()
				out.WriteString(anchor)
				i = next
				continue
			}
		case strings.HasPrefix(s[i:], "**"):
			if inner, next, ok := scanEmphasis(s, i, "**"); ok {
				flush()
				out.WriteString("<strong>")
				out.WriteString(renderInline(inner))
				out.WriteString("</strong>")
				i = next
				continue
			}
		case s[i] == '*':
			if inner, next, ok := scanEmphasis(s, i, "*"); ok {
				flush()
				out.WriteString("<em>")
				out.WriteString(renderInline(inner))
				out.WriteString("</em>")
				i = next
				continue
			}
		}
		literal.WriteByte(s[i])
		i++
	}

	flush()
	return out.String()
}

// scanInlineCode handles `code` spans. Content between the backticks is
// escaped and never re-interpreted as Markdown or raw HTML, which is the path
// that neutralises a literal <script> typed inside backticks.
func scanInlineCode(s string, start int) (string, int, bool) {
	end := strings.IndexByte(s[start+1:], '`')
	if end < 0 {
		return "", start, false
	}
	content := s[start+1 : start+1+end]
	return "<code>" + EscapeText(content) + "</code>", start + end + 2, true
}

func scanLink(s string, start int) (string, int, bool) {
	label, url, next, ok := scanBracketPair(s, start)
	if !ok || !allowedURL(url) {
		return "", start, false
	}
	anchor := `<a href="` + EscapeAttr(url) + `"` + anchorPolicy + `>` + EscapeText(label) + `</a>`
	return anchor, next, true
}

func scanImage(s string, start int) (string, int, bool) {
	alt, url, next, ok := scanBracketPair(s, start+1)
	if !ok || !allowedURL(url) {
		return "", start, false
	}
	img := `<img src="` + EscapeAttr(url) + `" alt="` + EscapeText(alt) + `">`
	return img, next, true
}

// scanBracketPair parses the [label](url) shape used by links and images,
// tracking bracket depth so labels may contain balanced square brackets.
func scanBracketPair(s string, start int) (label, url string, next int, ok bool) {
	depth := 0
	closeIdx := -1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 || closeIdx+1 >= len(s) || s[closeIdx+1] != '(' {
		return "", "", start, false
	}
	end := strings.IndexByte(s[closeIdx+2:], ')')
	if end < 0 {
		return "", "", start, false
	}
	label = s[start+1 : closeIdx]
	url = strings.TrimSpace(s[closeIdx+2 : closeIdx+2+end])
	return label, url, closeIdx + end + 3, true
}

// scanEmphasis finds the closing delimiter for *...* or **...** pairs. For
// the strong delimiter the match shifts one position right when followed by a
// further asterisk so that nested constructs like **bold *it*** close at the
// outermost pair.
func scanEmphasis(s string, start int, delim string) (string, int, bool) {
	tail := s[start+len(delim):]
	idx := strings.Index(tail, delim)
	if idx <= 0 {
		return "", start, false
	}
	if delim == "**" && idx+2 < len(tail) && tail[idx+2] == '*' {
		idx++
	}
	inner := tail[:idx]
	if strings.TrimSpace(inner) == "" {
		return "", start, false
	}
	return inner, start + len(delim) + idx + len(delim), true
}

// allowedURL gates the schemes that may become live href/src attribute
// values. Anything outside http, https, mailto, or a relative reference is
// rejected and the construct renders as plain escaped text instead.
func allowedURL(url string) bool {
	idx := strings.IndexAny(url, ":/?#")
	if idx < 0 || url[idx] != ':' {
		return true
	}
	switch strings.ToLower(url[:idx]) {
	case "http", "https", "mailto":
		return true
	default:
		return false
	}
}

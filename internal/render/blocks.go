package render

import "strings"

type blockKind int

const (
	blockParagraph blockKind = iota
	blockCode
	blockTable
	blockHeading
	blockQuote
	blockList
	blockRule
)

// block is a classified contiguous region of the source document. All fields
// hold raw, unescaped text; escaping happens when inline content is rendered.
type block struct {
	kind    blockKind
	lines   []string
	lang    string
	level   int
	ordered bool
	header  []string
	rows    [][]string
}

// parseBlocks splits the document into an ordered sequence of blocks. The
// scan proceeds strictly forward, line by line, with no backtracking beyond
// locating a fence or table terminator. Parsing is total: anything that does
// not match a recognised construct becomes a paragraph.
func parseBlocks(source string) []block {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")

	var blocks []block
	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}

		if lang, ok := fenceOpen(trimmed); ok {
			if b, next, closed := scanFence(lines, i+1, lang); closed {
				blocks = append(blocks, b)
				i = next
				continue
			}
			// Unterminated fence: the remaining literal text, fence line
			// included, degrades to paragraph treatment.
			blocks = append(blocks, block{kind: blockParagraph, lines: dropTrailingBlank(lines[i:])})
			break
		}

		if b, next, ok := scanTable(lines, i); ok {
			blocks = append(blocks, b)
			i = next
			continue
		}

		if level, text, ok := headingLine(trimmed); ok {
			blocks = append(blocks, block{kind: blockHeading, level: level, lines: []string{text}})
			i++
			continue
		}

		if ruleLine(trimmed) {
			blocks = append(blocks, block{kind: blockRule})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			b, next := scanQuote(lines, i)
			blocks = append(blocks, b)
			i = next
			continue
		}

		if _, ok := listItem(trimmed); ok {
			b, next := scanList(lines, i)
			blocks = append(blocks, b)
			i = next
			continue
		}

		b, next := scanParagraph(lines, i)
		blocks = append(blocks, b)
		i = next
	}

	return blocks
}

// fenceOpen reports whether the line opens a fenced code block, returning the
// optional language tag that follows the backticks.
func fenceOpen(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "```") {
		return "", false
	}
	tag := strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
	return tag, true
}

func fenceClose(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") && strings.TrimLeft(trimmed, "`") == ""
}

// scanFence collects fence content starting after the opening line. It
// reports closed=false when no terminator exists before the end of input.
func scanFence(lines []string, start int, lang string) (block, int, bool) {
	for i := start; i < len(lines); i++ {
		if fenceClose(strings.TrimSpace(lines[i])) {
			content := append([]string(nil), lines[start:i]...)
			return block{kind: blockCode, lang: lang, lines: content}, i + 1, true
		}
	}
	return block{}, start, false
}

// scanTable recognises a header row, a dash separator row, and zero or more
// data rows. Detection requires both leading rows; otherwise the caller falls
// through to paragraph handling.
func scanTable(lines []string, start int) (block, int, bool) {
	if start+1 >= len(lines) {
		return block{}, start, false
	}
	headerLine := strings.TrimSpace(lines[start])
	sepLine := strings.TrimSpace(lines[start+1])
	if !strings.Contains(headerLine, "|") || !tableSeparator(sepLine) {
		return block{}, start, false
	}

	header := splitTableRow(headerLine)
	if len(header) == 0 {
		return block{}, start, false
	}

	var rows [][]string
	i := start + 2
	for ; i < len(lines); i++ {
		row := strings.TrimSpace(lines[i])
		if row == "" || !strings.Contains(row, "|") {
			break
		}
		rows = append(rows, splitTableRow(row))
	}

	return block{kind: blockTable, header: header, rows: rows}, i, true
}

// tableSeparator matches rows like "|---|:---:|" that divide a table header
// from its body. Every cell must contain at least one dash and nothing but
// dashes and alignment colons.
func tableSeparator(trimmed string) bool {
	if !strings.Contains(trimmed, "-") || !strings.ContainsAny(trimmed, "|") {
		return false
	}
	for _, cell := range splitTableRow(trimmed) {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		dashes := 0
		for _, r := range cell {
			switch r {
			case '-':
				dashes++
			case ':':
			default:
				return false
			}
		}
		if dashes == 0 {
			return false
		}
	}
	return true
}

func splitTableRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	parts := strings.Split(row, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

func headingLine(trimmed string) (int, string, bool) {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	return level, strings.TrimSpace(rest), true
}

func ruleLine(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}

func scanQuote(lines []string, start int) (block, int) {
	var content []string
	i := start
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		text := strings.TrimPrefix(trimmed, ">")
		content = append(content, strings.TrimPrefix(text, " "))
	}
	return block{kind: blockQuote, lines: content}, i
}

// listItem extracts the text of an unordered ("- ", "* ", "+ ") or ordered
// ("1. ", "2) ") list item, reporting ordered=true for the latter via
// scanList's marker re-check.
func listItem(trimmed string) (string, bool) {
	if text, ok := unorderedItem(trimmed); ok {
		return text, true
	}
	if text, ok := orderedItem(trimmed); ok {
		return text, true
	}
	return "", false
}

func unorderedItem(trimmed string) (string, bool) {
	if len(trimmed) < 2 {
		return "", false
	}
	marker := trimmed[0]
	if (marker == '-' || marker == '*' || marker == '+') && trimmed[1] == ' ' {
		return strings.TrimSpace(trimmed[1:]), true
	}
	return "", false
}

func orderedItem(trimmed string) (string, bool) {
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(trimmed) {
		return "", false
	}
	if sep := trimmed[digits]; sep != '.' && sep != ')' {
		return "", false
	}
	if trimmed[digits+1] != ' ' {
		return "", false
	}
	return strings.TrimSpace(trimmed[digits+1:]), true
}

func scanList(lines []string, start int) (block, int) {
	_, ordered := orderedItem(strings.TrimSpace(lines[start]))
	var items []string
	i := start
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		text, ok := listItem(trimmed)
		if !ok {
			break
		}
		if itemOrdered := isOrdered(trimmed); itemOrdered != ordered {
			break
		}
		items = append(items, text)
	}
	return block{kind: blockList, ordered: ordered, lines: items}, i
}

func isOrdered(trimmed string) bool {
	_, ok := orderedItem(trimmed)
	return ok
}

// scanParagraph collects consecutive lines until a blank line or the start of
// another block construct.
func scanParagraph(lines []string, start int) (block, int) {
	var content []string
	i := start
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			break
		}
		if i > start && startsNewBlock(lines, i) {
			break
		}
		content = append(content, trimmed)
	}
	return block{kind: blockParagraph, lines: content}, i
}

func startsNewBlock(lines []string, i int) bool {
	trimmed := strings.TrimSpace(lines[i])
	if _, ok := fenceOpen(trimmed); ok {
		return true
	}
	if _, _, ok := headingLine(trimmed); ok {
		return true
	}
	if ruleLine(trimmed) || strings.HasPrefix(trimmed, ">") {
		return true
	}
	if _, ok := listItem(trimmed); ok {
		return true
	}
	if _, _, ok := scanTable(lines, i); ok {
		return true
	}
	return false
}

func dropTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return append([]string(nil), lines[:end]...)
}

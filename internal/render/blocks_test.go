package render

import "testing"

func TestParseBlocksClassifiesFence(t *testing.T) {
	blocks := parseBlocks("```js\nconst a = 1;\nconst b = 2;\n```")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.kind != blockCode {
		t.Fatalf("expected code block, got kind %d", b.kind)
	}
	if b.lang != "js" {
		t.Fatalf("expected language js, got %q", b.lang)
	}
	if len(b.lines) != 2 || b.lines[0] != "const a = 1;" {
		t.Fatalf("unexpected fence content: %#v", b.lines)
	}
}

func TestParseBlocksUnterminatedFenceFallsBackToParagraph(t *testing.T) {
	blocks := parseBlocks("```js\nno closing fence here")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].kind != blockParagraph {
		t.Fatalf("expected paragraph fallback, got kind %d", blocks[0].kind)
	}
	if blocks[0].lines[0] != "```js" {
		t.Fatalf("expected fence line kept as literal text, got %#v", blocks[0].lines)
	}
}

func TestParseBlocksClassifiesTable(t *testing.T) {
	src := "| Name | Age |\n| --- | --- |\n| Ada | 36 |\n| Alan | 41 |"
	blocks := parseBlocks(src)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.kind != blockTable {
		t.Fatalf("expected table block, got kind %d", b.kind)
	}
	if len(b.header) != 2 || b.header[0] != "Name" || b.header[1] != "Age" {
		t.Fatalf("unexpected header cells: %#v", b.header)
	}
	if len(b.rows) != 2 || b.rows[0][0] != "Ada" || b.rows[1][1] != "41" {
		t.Fatalf("unexpected body rows: %#v", b.rows)
	}
}

func TestParseBlocksTableWithoutSeparatorIsParagraph(t *testing.T) {
	blocks := parseBlocks("| just | pipes |\nno separator row")

	if len(blocks) != 1 || blocks[0].kind != blockParagraph {
		t.Fatalf("expected paragraph, got %#v", blocks)
	}
}

func TestParseBlocksHeadingsAndRule(t *testing.T) {
	blocks := parseBlocks("# Title\n\n## Section\n\n---")

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].kind != blockHeading || blocks[0].level != 1 || blocks[0].lines[0] != "Title" {
		t.Fatalf("unexpected first heading: %#v", blocks[0])
	}
	if blocks[1].kind != blockHeading || blocks[1].level != 2 {
		t.Fatalf("unexpected second heading: %#v", blocks[1])
	}
	if blocks[2].kind != blockRule {
		t.Fatalf("expected rule, got %#v", blocks[2])
	}
}

func TestParseBlocksHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks := parseBlocks("#hashtag")

	if len(blocks) != 1 || blocks[0].kind != blockParagraph {
		t.Fatalf("expected paragraph, got %#v", blocks)
	}
}

func TestParseBlocksLists(t *testing.T) {
	blocks := parseBlocks("- one\n- two\n\n1. first\n2. second")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].kind != blockList || blocks[0].ordered {
		t.Fatalf("expected unordered list, got %#v", blocks[0])
	}
	if len(blocks[0].lines) != 2 || blocks[0].lines[1] != "two" {
		t.Fatalf("unexpected unordered items: %#v", blocks[0].lines)
	}
	if blocks[1].kind != blockList || !blocks[1].ordered {
		t.Fatalf("expected ordered list, got %#v", blocks[1])
	}
}

func TestParseBlocksQuote(t *testing.T) {
	blocks := parseBlocks("> quoted line\n> second line")

	if len(blocks) != 1 || blocks[0].kind != blockQuote {
		t.Fatalf("expected quote block, got %#v", blocks)
	}
	if len(blocks[0].lines) != 2 || blocks[0].lines[0] != "quoted line" {
		t.Fatalf("unexpected quote content: %#v", blocks[0].lines)
	}
}

func TestParseBlocksParagraphSplitOnBlankLine(t *testing.T) {
	blocks := parseBlocks("first paragraph\ncontinued\n\nsecond paragraph")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(blocks))
	}
	if len(blocks[0].lines) != 2 || blocks[1].lines[0] != "second paragraph" {
		t.Fatalf("unexpected paragraph split: %#v", blocks)
	}
}

func TestParseBlocksCRLFInput(t *testing.T) {
	blocks := parseBlocks("# Title\r\n\r\nbody text")

	if len(blocks) != 2 || blocks[0].kind != blockHeading || blocks[1].kind != blockParagraph {
		t.Fatalf("expected heading and paragraph from CRLF input, got %#v", blocks)
	}
}

func TestParseBlocksEmptyInput(t *testing.T) {
	if blocks := parseBlocks(""); len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty input, got %#v", blocks)
	}
}

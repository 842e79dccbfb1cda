// Package render implements the safe Markdown-to-HTML pipeline: an escaper
// for HTML-significant characters, a forward line-oriented block parser, an
// inline renderer for links, images, emphasis, and code spans, and an
// assembler that wraps code blocks and tables for styling hooks. Parsing is
// fail-soft: unrecognised or malformed constructs degrade to literal escaped
// text instead of raising errors.
package render

// Package markdown provides filesystem-backed document workflows on top of
// the render engines: frontmatter extraction, file discovery, and rendering
// of discovered documents into safe HTML.
package markdown

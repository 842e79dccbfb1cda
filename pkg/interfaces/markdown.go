package interfaces

import "time"

// Renderer converts raw Markdown bytes into HTML that is safe to insert into
// a page. Implementations must be stateless so callers can reuse a single
// instance across goroutines without additional locking.
type Renderer interface {
	// Render converts Markdown into HTML using the renderer's default settings.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises rendering behaviour, keeping option names readable
// for configuration unmarshalling and CLI flags.
type RenderOptions struct {
	// Extensions toggles named syntax extensions on engines that support
	// them (the goldmark engine); the safe engine ignores unknown names.
	Extensions []string
	// Sanitize runs a bluemonday pass over engine output. The goldmark
	// engine always sanitises; on the safe engine this adds a scrub pass on
	// top of the escaping pipeline.
	Sanitize bool
	// HardWraps renders newlines inside paragraphs as <br> elements.
	HardWraps bool
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Locale       string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so callers can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. The Custom map
// keeps the shape flexible for template- or domain-specific values.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Renderer  RenderOptions
}

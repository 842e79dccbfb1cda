package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrEngineUnknown indicates a renderer engine name outside the supported set.
var ErrEngineUnknown = errors.New("mdrender config: renderer engine is invalid")

// ErrMarkdownContentDirRequired guards the document workflows against an
// empty base directory.
var ErrMarkdownContentDirRequired = errors.New("mdrender config: markdown content directory is required when markdown is enabled")
var ErrLoggingProviderUnknown = errors.New("mdrender config: logging provider is invalid")
var ErrLoggingFormatInvalid = errors.New("mdrender config: logging format is invalid")

// Engine identifiers accepted by RenderConfig.Engine.
const (
	EngineSafe     = "safe"
	EngineGoldmark = "goldmark"
)

// Logging provider identifiers accepted by LoggingConfig.Provider.
const (
	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"
	LoggingProviderNoop     = "noop"
)

// Config aggregates renderer, document, and logging settings for the module.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	Render   RenderConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// RenderConfig selects the rendering engine and its default options.
type RenderConfig struct {
	Engine     string
	Extensions []string
	Sanitize   bool
	HardWraps  bool
}

// MarkdownConfig captures filesystem behaviour for document workflows.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns opinionated defaults: the safe engine, console
// logging at info, and document discovery rooted at "content".
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Engine: EngineSafe,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
	}
}

// Validate reports the first configuration inconsistency found.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Render.Engine)) {
	case "", EngineSafe, EngineGoldmark:
	default:
		return ErrEngineUnknown
	}

	if c.Markdown.Enabled && strings.TrimSpace(c.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", LoggingProviderConsole, LoggingProviderGoLogger, LoggingProviderNoop:
	default:
		return ErrLoggingProviderUnknown
	}

	// Level is deliberately not validated: unrecognised names fall back to
	// the most verbose level at parse time so a typo never silences logs.
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}

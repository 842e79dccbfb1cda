// Package mdrender converts Markdown-formatted text into HTML that is safe
// to insert into a page. The default engine is a bespoke pipeline whose
// escaping guarantees are auditable in this repository; a goldmark-backed
// engine with a bluemonday sanitisation pass is available for callers that
// want full GFM breadth.
package mdrender

import (
	"context"
	"os"
	"strings"

	"github.com/goliatone/go-mdrender/internal/logging"
	"github.com/goliatone/go-mdrender/internal/logging/console"
	"github.com/goliatone/go-mdrender/internal/logging/gologger"
	"github.com/goliatone/go-mdrender/internal/markdown"
	"github.com/goliatone/go-mdrender/internal/render"
	"github.com/goliatone/go-mdrender/internal/runtimeconfig"
	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

// MarkdownService exports the document workflow contract for consumers of
// the mdrender package.
type MarkdownService = markdown.Service

// Renderer exports the engine contract.
type Renderer = interfaces.Renderer

// RenderOptions exports the per-call option overrides.
type RenderOptions = interfaces.RenderOptions

// LoadOptions exports the per-call document loading overrides.
type LoadOptions = interfaces.LoadOptions

// Document exports the parsed document envelope.
type Document = interfaces.Document

// Logger exports the leveled logging contract.
type Logger = interfaces.Logger

// ErrRenderFailed marks the only hard rendering failure class: an internal
// fault, never malformed input.
var ErrRenderFailed = render.ErrRenderFailed

// Module is the top level renderer runtime facade.
type Module struct {
	cfg       Config
	renderer  interfaces.Renderer
	service   *markdown.Service
	loggers   interfaces.LoggerProvider
	logger    interfaces.Logger
	requestID *logging.RequestIDHolder
}

// New constructs a renderer module using the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	requestID := logging.NewRequestIDHolder()

	loggers, err := buildLoggerProvider(cfg.Logging, requestID)
	if err != nil {
		return nil, err
	}

	renderer := buildRenderer(cfg.Render)

	m := &Module{
		cfg:       cfg,
		renderer:  renderer,
		loggers:   loggers,
		logger:    logging.RenderLogger(loggers),
		requestID: requestID,
	}

	if cfg.Markdown.Enabled {
		service, err := markdown.NewService(markdown.Config{
			BasePath:  cfg.Markdown.ContentDir,
			Pattern:   cfg.Markdown.Pattern,
			Recursive: cfg.Markdown.Recursive,
			Renderer:  renderOptions(cfg.Render),
		}, renderer, loggers)
		if err != nil {
			return nil, err
		}
		m.service = service
	}

	return m, nil
}

// Render converts Markdown text into safe HTML. The call is total for any
// input; the only error class is an internal rendering fault.
func (m *Module) Render(ctx context.Context, markdownText string) (string, error) {
	logger := m.logger.WithContext(ctx)
	logger.Debug("render.start", "bytes", len(markdownText))

	html, err := m.renderer.Render([]byte(markdownText))
	if err != nil {
		logger.Error("render.failed", "error", err)
		return "", err
	}

	logger.Debug("render.done", "bytes", len(html))
	return string(html), nil
}

// Renderer exposes the configured engine for advanced integrations.
func (m *Module) Renderer() interfaces.Renderer {
	return m.renderer
}

// Markdown returns the document workflow service, or nil when the markdown
// feature is disabled.
func (m *Module) Markdown() *markdown.Service {
	return m.service
}

// Loggers exposes the logger provider so hosts can scope their own loggers.
func (m *Module) Loggers() interfaces.LoggerProvider {
	return m.loggers
}

// RequestID exposes the process-wide correlation holder. Prefer
// WithRequestID, which threads the identifier through a context instead.
func (m *Module) RequestID() *logging.RequestIDHolder {
	return m.requestID
}

// WithRequestID returns a context carrying the supplied correlation id; a
// blank id generates a fresh <epoch>-<random-base36> identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = logging.NewRequestID()
	}
	return logging.ContextWithRequestID(ctx, id)
}

func buildRenderer(cfg RenderConfig) interfaces.Renderer {
	opts := renderOptions(cfg)
	if strings.EqualFold(strings.TrimSpace(cfg.Engine), runtimeconfig.EngineGoldmark) {
		return render.NewGoldmark(opts)
	}
	return render.NewSafe(opts)
}

func renderOptions(cfg RenderConfig) interfaces.RenderOptions {
	return interfaces.RenderOptions{
		Extensions: append([]string(nil), cfg.Extensions...),
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
	}
}

func buildLoggerProvider(cfg LoggingConfig, requestID *logging.RequestIDHolder) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case runtimeconfig.LoggingProviderGoLogger:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	case runtimeconfig.LoggingProviderNoop:
		return noopProvider{}, nil
	default:
		name := cfg.Level
		if strings.TrimSpace(name) == "" {
			name = os.Getenv("LOG_LEVEL")
		}
		level := console.ParseLevel(name)
		return console.NewProvider(console.Options{
			MinLevel:  &level,
			RequestID: requestID,
		}), nil
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}

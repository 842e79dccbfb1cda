package mdrender

import "github.com/goliatone/go-mdrender/internal/runtimeconfig"

var (
	ErrEngineUnknown              = runtimeconfig.ErrEngineUnknown
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	RenderConfig   = runtimeconfig.RenderConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// Engine identifiers accepted by RenderConfig.Engine.
const (
	EngineSafe     = runtimeconfig.EngineSafe
	EngineGoldmark = runtimeconfig.EngineGoldmark
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

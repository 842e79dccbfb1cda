package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-mdrender/pkg/interfaces"
)

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}

	// None of these may panic without a provider.
	logger.Debug("dropped")
	logger.Warn("dropped")
	logger.WithContext(context.Background()).Info("dropped")
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	recorder := &recordingProvider{}

	RenderLogger(recorder).Info("entry")

	if recorder.lastName != "mdrender.render" {
		t.Fatalf("expected render namespace, got %q", recorder.lastName)
	}
	if recorder.lastFields["module"] != "mdrender.render" {
		t.Fatalf("expected module field, got %#v", recorder.lastFields)
	}
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	recorder := &recordingProvider{}
	logger := MarkdownLogger(recorder)

	WithDocumentContext(logger, "docs/intro.md", "", "safe").Info("entry")

	if recorder.lastFields["document_path"] != "docs/intro.md" {
		t.Fatalf("expected document path field, got %#v", recorder.lastFields)
	}
	if _, ok := recorder.lastFields["locale"]; ok {
		t.Fatalf("expected empty locale skipped, got %#v", recorder.lastFields)
	}
	if recorder.lastFields["engine"] != "safe" {
		t.Fatalf("expected engine field, got %#v", recorder.lastFields)
	}
}

type recordingProvider struct {
	lastName   string
	lastFields map[string]any
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.lastName = name
	return &recordingLogger{provider: p, fields: map[string]any{}}
}

type recordingLogger struct {
	provider *recordingProvider
	fields   map[string]any
}

var (
	_ interfaces.Logger       = (*recordingLogger)(nil)
	_ interfaces.FieldsLogger = (*recordingLogger)(nil)
)

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	l.provider.lastFields = merged
	return &recordingLogger{provider: l.provider, fields: merged}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}

package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-enum-primer/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "primer.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure chained operations do not panic.
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerDefaultsModuleName(t *testing.T) {
	recorder := &recordingLogger{}
	provider := &stubProvider{logger: recorder}

	ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != "primer" {
		t.Fatalf("expected root module request, got %#v", provider.requested)
	}
	if len(recorder.fields) != 1 || recorder.fields[0]["module"] != "primer" {
		t.Fatalf("expected module field, got %#v", recorder.fields)
	}
}

func TestNamespaceHelpers(t *testing.T) {
	recorder := &recordingLogger{}
	provider := &stubProvider{logger: recorder}

	MarkdownLogger(provider)
	DemoLogger(provider)

	want := []string{"primer.markdown", "primer.demo"}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %d requests, got %#v", len(want), provider.requested)
	}
	for i, name := range want {
		if provider.requested[i] != name {
			t.Fatalf("request %d: expected %q, got %q", i, name, provider.requested[i])
		}
	}
}

func TestWithFieldsHandlesNilLoggers(t *testing.T) {
	logger := WithFields(NoOp(), map[string]any{"key": "value"})
	if logger == nil {
		t.Fatal("expected logger back")
	}

	if got := WithFields(nil, map[string]any{"key": "value"}); got != nil {
		t.Fatalf("expected nil logger to pass through, got %#v", got)
	}
}

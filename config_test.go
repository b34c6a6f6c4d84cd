package primer

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
}

func TestConfigValidateRequiresDocsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DocsDir = "  "

	if err := cfg.Validate(); !errors.Is(err, ErrDocsDirRequired) {
		t.Fatalf("expected ErrDocsDirRequired, got %v", err)
	}
}

func TestLoggingConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		logging LoggingConfig
		want    error
	}{
		{name: "empty defaults", logging: LoggingConfig{}},
		{name: "gologger json", logging: LoggingConfig{Provider: "gologger", Level: "debug", Format: "json"}},
		{name: "noop provider", logging: LoggingConfig{Provider: "noop"}},
		{name: "unknown provider", logging: LoggingConfig{Provider: "syslog"}, want: ErrLoggingProviderUnknown},
		{name: "invalid level", logging: LoggingConfig{Level: "loud"}, want: ErrLoggingLevelInvalid},
		{name: "invalid format", logging: LoggingConfig{Format: "xml"}, want: ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.logging.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

package config

import (
	"testing"
)

func TestConfigLogLevelValidation(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{"Valid DEBUG", "DEBUG", false},
		{"Valid INFO", "INFO", false},
		{"Valid WARN", "WARN", false},
		{"Valid ERROR", "ERROR", false},
		{"Valid lowercase debug", "debug", false},
		{"Invalid value", "INVALID", true},
		{"Empty string", "", false},
		{"Mixed case", "DeBuG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaults()
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel == "" {
		t.Error("LogLevel should have a default value")
	}
	if cfg.Port == "" {
		t.Error("Port should have a default value")
	}
	if cfg.AliasDictPath == "" {
		t.Error("AliasDictPath should have a default value")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestConfigMissingTOMLFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig("does/not/exist.toml")
	if err != nil {
		t.Fatalf("LoadConfig() with missing file should not error, got %v", err)
	}
	if cfg.Port != "8978" {
		t.Errorf("expected default port to survive a missing config file, got %s", cfg.Port)
	}
}

func TestConfigInvalidRateLimitBurst(t *testing.T) {
	cfg := GetDefaults()
	cfg.RateLimitRPS = 10
	cfg.RateLimitBurst = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero burst with positive rps")
	}
}

// Package config loads the citation service's runtime configuration from
// an optional config.toml file, then environment variables, matching the
// layered precedence the teacher used (env vars always win).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the citation service's runtime configuration.
type Config struct {
	// Сервер
	Port string `toml:"port" json:"port"`

	// Распознавание
	AliasDictPath string `toml:"alias_dict_path" json:"alias_dict_path"`

	// Логирование
	LogLevel string `toml:"log_level" json:"log_level"`

	// Таймауты
	RequestTimeout time.Duration `toml:"request_timeout" json:"request_timeout"`

	// Rate limiting для /detect
	RateLimitRPS   float64 `toml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst" json:"rate_limit_burst"`

	// Управляемый /reload
	ReloadEnabled bool `toml:"reload_enabled" json:"reload_enabled"`
}

// GetDefaults returns the configuration used when no file or env override
// is present.
func GetDefaults() *Config {
	return &Config{
		Port:           "8978",
		AliasDictPath:  "data/aliases.json",
		LogLevel:       "INFO",
		RequestTimeout: 5 * time.Second,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		ReloadEnabled:  false,
	}
}

// LoadConfig builds the configuration: defaults, then an optional
// config.toml at the given path (skipped silently if the file does not
// exist), then environment variables, which always take precedence.
func LoadConfig(tomlPath string) (*Config, error) {
	cfg := GetDefaults()

	if tomlPath != "" {
		if _, err := os.Stat(tomlPath); err == nil {
			if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", tomlPath, err)
			}
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AliasDictPath = getEnv("ALIAS_DICT_PATH", cfg.AliasDictPath)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.RateLimitRPS = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.ReloadEnabled = getEnv("RELOAD_ENABLED", boolStr(cfg.ReloadEnabled)) == "true"

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

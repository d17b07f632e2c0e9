package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	var errs []string

	if c.Port == "" {
		errs = append(errs, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errs = append(errs, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.AliasDictPath == "" {
		errs = append(errs, "alias dict path is required")
	}

	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		upper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if upper == level {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, "request timeout must be positive")
	}

	if c.RateLimitRPS < 0 {
		errs = append(errs, "rate limit rps cannot be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, "rate limit burst must be at least 1 when rate limiting is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1024 * 1024

// Load reads configuration from the YAML file at configPath, then overrides
// with RADARD_-prefixed environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (RADARD_REPO_ROOT, RADARD_LOG_LEVEL, ...)
//  2. YAML config file
//  3. Hardcoded defaults
//
// A missing config file is not an error; an empty configPath skips the file
// entirely. Environment variables map section-first:
//
//	RADARD_REPO_ROOT        -> repo.root
//	RADARD_SCAN_STALE_AFTER -> scan.stale_after
//	RADARD_LOG_LEVEL        -> log.level
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// Defaults plus env only.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		case len(content) > maxConfigFileSize:
			return nil, fmt.Errorf("config file %s exceeds %d bytes", configPath, maxConfigFileSize)
		default:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider("RADARD_", ".", func(s string) string {
		// RADARD_SCAN_STALE_AFTER -> scan.stale_after: the first underscore
		// separates section from field, the rest stay underscores.
		lower := strings.ToLower(strings.TrimPrefix(s, "RADARD_"))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

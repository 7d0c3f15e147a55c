package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-readmedocs/internal/config"
)

// envPrefix marks variables this program reads.
const envPrefix = "READMEDOCS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // READMEDOCS_CONFIG: config file name or path
	Engine     string // READMEDOCS_ENGINE: rules or goldmark
	OutputDir  string // READMEDOCS_OUTPUT_DIR: output directory
	Style      string // READMEDOCS_STYLE: CSS style name or path
	Timeout    string // READMEDOCS_TIMEOUT: per-document timeout
	Workers    int    // READMEDOCS_WORKERS: parallel workers
	Token      string // GITHUB_TOKEN: API token
}

// knownEnvVars lists valid READMEDOCS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"READMEDOCS_CONFIG":     true,
	"READMEDOCS_ENGINE":     true,
	"READMEDOCS_OUTPUT_DIR": true,
	"READMEDOCS_STYLE":      true,
	"READMEDOCS_TIMEOUT":    true,
	"READMEDOCS_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("READMEDOCS_CONFIG"),
		Engine:     getenv("READMEDOCS_ENGINE"),
		OutputDir:  getenv("READMEDOCS_OUTPUT_DIR"),
		Style:      getenv("READMEDOCS_STYLE"),
		Token:      getenv("GITHUB_TOKEN"),
	}

	if timeout := getenv("READMEDOCS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = timeout
		}
	}

	if workers := getenv("READMEDOCS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized READMEDOCS_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.Timeout != "" {
		cfg.Render.Timeout = env.Timeout
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	// A token in the config file is explicit and wins over the ambient one
	if env.Token != "" && cfg.Source.Token == "" {
		cfg.Source.Token = env.Token
	}
}

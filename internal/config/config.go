package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	readmedocs "github.com/alnah/go-readmedocs"
	"github.com/alnah/go-readmedocs/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTokenLength       = 255  // GitHub tokens are well below this
	MaxURLLength         = 2048 // Browser limit
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxStyleNameLength   = 50   // chroma style names
	MaxTitleSuffixLength = 100
	MaxLangLength        = 35 // BCP 47 tag
	MaxRetries           = 10
)

// Config holds all configuration for README rendering.
type Config struct {
	Render  RenderConfig `yaml:"render"`
	Source  SourceConfig `yaml:"source"`
	Output  OutputConfig `yaml:"output"`
	Page    PageConfig   `yaml:"page"`
	Assets  AssetsConfig `yaml:"assets"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// RenderConfig selects the conversion engine.
type RenderConfig struct {
	Engine         string `yaml:"engine"`         // "rules" (default) or "goldmark"
	Highlight      bool   `yaml:"highlight"`      // chroma highlighting, goldmark engine only
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name (default: "github")
	Timeout        string `yaml:"timeout"`        // Go duration per document (default: 30s)
}

// SourceConfig defines README retrieval options.
type SourceConfig struct {
	Token   string `yaml:"token"`   // GitHub token (prefer GITHUB_TOKEN)
	Timeout string `yaml:"timeout"` // Go duration per HTTP request (default: 10s)
	Retries int    `yaml:"retries"` // attempts per request (default: 3)
	APIURL  string `yaml:"apiURL"`  // REST API root (default: https://api.github.com)
	RawURL  string `yaml:"rawURL"`  // raw content origin (default: https://raw.githubusercontent.com)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = current directory
}

// PageConfig defines the generated HTML page.
type PageConfig struct {
	Style       string `yaml:"style"`       // style name or .css path (default: "default")
	Template    string `yaml:"template"`    // template name (default: "page")
	TitleSuffix string `yaml:"titleSuffix"` // default: "readme.docs"
	Lang        string `yaml:"lang"`        // default: "en"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Render.Engine != "" && !readmedocs.IsValidEngine(c.Render.Engine) {
		return fmt.Errorf("%w: render.engine %q (must be one of %s)",
			ErrInvalidValue, c.Render.Engine, strings.Join(readmedocs.Engines, ", "))
	}
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateDuration("render.timeout", c.Render.Timeout); err != nil {
		return err
	}

	if err := validateFieldLength("source.token", c.Source.Token, MaxTokenLength); err != nil {
		return err
	}
	if err := validateDuration("source.timeout", c.Source.Timeout); err != nil {
		return err
	}
	if c.Source.Retries < 0 || c.Source.Retries > MaxRetries {
		return fmt.Errorf("%w: source.retries must be between 0 and %d, got %d", ErrInvalidValue, MaxRetries, c.Source.Retries)
	}
	if err := validateURL("source.apiURL", c.Source.APIURL); err != nil {
		return err
	}
	if err := validateURL("source.rawURL", c.Source.RawURL); err != nil {
		return err
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.style", c.Page.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.template", c.Page.Template, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.titleSuffix", c.Page.TitleSuffix, MaxTitleSuffixLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.lang", c.Page.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > readmedocs.MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, readmedocs.MaxWorkers, c.Workers)
	}
	return nil
}

// RenderTimeout returns render.timeout, or 0 when unset.
func (c *Config) RenderTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Render.Timeout)
	return d
}

// SourceTimeout returns source.timeout, or 0 when unset.
func (c *Config) SourceTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Source.Timeout)
	return d
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateURL accepts an empty value or an http(s) URL.
func validateURL(fieldName, value string) error {
	if err := validateFieldLength(fieldName, value, MaxURLLength); err != nil {
		return err
	}
	if value != "" && !fileutil.IsURL(value) {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// validateDuration accepts an empty value or a positive Go duration.
func validateDuration(fieldName, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s %q is not a duration (e.g. 30s, 1m)", ErrInvalidValue, fieldName, value)
	}
	if d <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
// Empty fields fall back to library and package defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Engine: readmedocs.DefaultEngine},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, $XDG_CONFIG_HOME/readmedocs/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "readmedocs", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

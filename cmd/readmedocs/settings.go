package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	readmedocs "github.com/alnah/go-readmedocs"
	"github.com/alnah/go-readmedocs/internal/config"
	"github.com/alnah/go-readmedocs/internal/fileutil"
	"github.com/alnah/go-readmedocs/internal/hints"
	"github.com/alnah/go-readmedocs/internal/page"
	"github.com/alnah/go-readmedocs/internal/source"
)

// defaultHighlightStyle is used when highlighting is on and no style is set.
const defaultHighlightStyle = "github"

// loadConfig builds the configuration before CLI flags are merged.
// The file named by --config, or READMEDOCS_CONFIG, replaces the defaults.
func loadConfig(flagPath string, env *Environment) (*config.Config, error) {
	ev := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := flagPath
	if name == "" {
		name = ev.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if !fileutil.IsFilePath(name) {
					searched = config.SearchPaths(name)
				}
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(ev, cfg)
	return cfg, nil
}

// mergeEngineFlags applies set engine flags to cfg (CLI wins).
func mergeEngineFlags(f *engineFlags, cfg *config.Config) {
	if f.engine != "" {
		cfg.Render.Engine = f.engine
	}
	if f.highlight {
		cfg.Render.Highlight = true
	}
	if f.highlightStyle != "" {
		cfg.Render.HighlightStyle = f.highlightStyle
	}
	if f.timeout != "" {
		cfg.Render.Timeout = f.timeout
	}
}

// mergeSourceFlags applies set retrieval flags to cfg (CLI wins).
func mergeSourceFlags(f *sourceFlags, cfg *config.Config) {
	if f.token != "" {
		cfg.Source.Token = f.token
	}
}

// mergePageFlags applies set page flags to cfg (CLI wins).
func mergePageFlags(f *pageFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Page.Style = f.style
	}
	if f.template != "" {
		cfg.Page.Template = f.template
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.titleSuffix != "" {
		cfg.Page.TitleSuffix = f.titleSuffix
	}
}

// validateMerged checks cfg once every layer has been applied.
// An unknown engine gets its own error so the hint lists the engines.
func validateMerged(cfg *config.Config) error {
	if cfg.Render.Engine != "" && !readmedocs.IsValidEngine(cfg.Render.Engine) {
		return fmt.Errorf("%w: %q", readmedocs.ErrUnknownEngine, cfg.Render.Engine)
	}
	return cfg.Validate()
}

// newRenderer creates the library renderer described by cfg.
func newRenderer(cfg *config.Config, logger *log.Logger) (*readmedocs.Renderer, error) {
	opts := []readmedocs.Option{readmedocs.WithLogger(logger)}
	if cfg.Render.Engine != "" {
		opts = append(opts, readmedocs.WithEngine(cfg.Render.Engine))
	}
	if cfg.Render.Highlight {
		style := cfg.Render.HighlightStyle
		if style == "" {
			style = defaultHighlightStyle
		}
		opts = append(opts, readmedocs.WithHighlighting(style))
	}
	if d := cfg.RenderTimeout(); d > 0 {
		opts = append(opts, readmedocs.WithTimeout(d))
	}
	return readmedocs.NewRenderer(opts...)
}

// newFetcher returns env.Fetcher, or a GitHub client configured by cfg.
func newFetcher(cfg *config.Config, env *Environment, logger *log.Logger) source.Fetcher {
	if env.Fetcher != nil {
		return env.Fetcher
	}

	opts := []source.Option{source.WithLogger(logger)}
	if cfg.Source.Token != "" {
		opts = append(opts, source.WithToken(cfg.Source.Token))
	}
	if cfg.Source.APIURL != "" {
		opts = append(opts, source.WithAPIURL(cfg.Source.APIURL))
	}
	if cfg.Source.RawURL != "" {
		opts = append(opts, source.WithRawURL(cfg.Source.RawURL))
	}
	if d := cfg.SourceTimeout(); d > 0 {
		opts = append(opts, source.WithHTTPClient(&http.Client{Timeout: d}))
	}
	if cfg.Source.Retries > 0 {
		opts = append(opts, source.WithRetry(cfg.Source.Retries, source.DefaultRetryDelay))
	}
	return source.NewGitHub(opts...)
}

// pageOptions maps the page section of cfg to builder options.
func pageOptions(cfg *config.Config) []page.Option {
	var opts []page.Option
	if cfg.Page.Style != "" {
		opts = append(opts, page.WithStyle(cfg.Page.Style))
	}
	if cfg.Page.Template != "" {
		opts = append(opts, page.WithTemplate(cfg.Page.Template))
	}
	if cfg.Page.TitleSuffix != "" {
		opts = append(opts, page.WithTitleSuffix(cfg.Page.TitleSuffix))
	}
	if cfg.Page.Lang != "" {
		opts = append(opts, page.WithLang(cfg.Page.Lang))
	}
	return opts
}

package main

import (
	"context"
	"errors"
	"os"

	readmedocs "github.com/alnah/go-readmedocs"
	"github.com/alnah/go-readmedocs/internal/assets"
	"github.com/alnah/go-readmedocs/internal/config"
	"github.com/alnah/go-readmedocs/internal/fileutil"
	"github.com/alnah/go-readmedocs/internal/hints"
	"github.com/alnah/go-readmedocs/internal/page"
	"github.com/alnah/go-readmedocs/internal/source"
)

// Exit codes for readmedocs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful render
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied
	ExitRetrieval = 4 // GitHub lookup or download failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Retrieval errors (exit 4)
	if errors.Is(err, source.ErrRepoNotFound) ||
		errors.Is(err, source.ErrNoReadme) ||
		errors.Is(err, source.ErrNetwork) ||
		errors.Is(err, source.ErrRateLimited) ||
		errors.Is(err, source.ErrTooLarge) {
		return ExitRetrieval
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, source.ErrReadLocal) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, source.ErrInvalidRepoRef) ||
		errors.Is(err, readmedocs.ErrEmptyMarkdown) ||
		errors.Is(err, readmedocs.ErrUnknownEngine) ||
		errors.Is(err, readmedocs.ErrInvalidBase) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, page.ErrStyleLoad) ||
		errors.Is(err, page.ErrTemplateLoad) ||
		errors.Is(err, fileutil.ErrEmptyPath) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrNoTarget) ||
		errors.Is(err, ErrStdoutMultiple) ||
		errors.Is(err, ErrDuplicateOutput) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
// Config lookup failures carry their hint already.
func hintFor(err error, env *Environment) string {
	hasToken := env.Getenv != nil && env.Getenv("GITHUB_TOKEN") != ""

	switch {
	case errors.Is(err, source.ErrRateLimited):
		return hints.ForRateLimit(hasToken)
	case errors.Is(err, source.ErrRepoNotFound):
		return hints.ForRepoNotFound(hasToken)
	case errors.Is(err, source.ErrNoReadme):
		return hints.ForNoReadme(source.ReadmeCandidates)
	case errors.Is(err, source.ErrInvalidRepoRef):
		return hints.ForInvalidRepoRef()
	case errors.Is(err, source.ErrNetwork):
		return hints.ForNetwork()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, readmedocs.ErrUnknownEngine):
		return hints.ForUnknownEngine(readmedocs.Engines)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Styles())
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}

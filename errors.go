package readmedocs

import (
	"errors"

	"github.com/alnah/go-readmedocs/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrUnknownEngine = errors.New("unknown render engine")

	// Shared with the pipeline so errors.Is matches either name.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrInvalidBase    = pipeline.ErrInvalidBase
)

package source

import "errors"

// Sentinel errors for retrieval.
var (
	// ErrInvalidRepoRef indicates a target that is neither owner/repo nor a GitHub URL.
	ErrInvalidRepoRef = errors.New("invalid repository reference")

	// ErrRepoNotFound indicates the repository metadata endpoint returned 404.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNoReadme indicates none of the README candidates exist.
	ErrNoReadme = errors.New("no README found in this repository")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited indicates the API refused the request for quota reasons.
	ErrRateLimited = errors.New("GitHub API rate limit exceeded")

	// ErrReadLocal indicates a local README could not be read.
	ErrReadLocal = errors.New("cannot read local file")

	// ErrTooLarge indicates a document exceeds MaxDocumentSize.
	ErrTooLarge = errors.New("document too large")

	// errNotFound is the raw 404 before it is mapped to a specific sentinel.
	errNotFound = errors.New("resource not found")
)

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-readmedocs/internal/pipeline"
)

// Default endpoints and limits.
const (
	DefaultAPIURL     = "https://api.github.com"
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second

	// MaxDocumentSize caps a README body. Larger documents are rejected.
	MaxDocumentSize = 10 << 20

	userAgent = "readmedocs"
)

// ReadmeCandidates are tried in order at the repository root.
var ReadmeCandidates = []string{"README.md", "readme.md", "README", "Readme.md"}

// Document is a retrieved README.
type Document struct {
	Markdown string
	Name     string        // file name, e.g. README.md
	Base     pipeline.Base // zero for local files unless the caller sets one
}

// Fetcher retrieves a repository README.
type Fetcher interface {
	FetchReadme(ctx context.Context, ref RepoRef) (*Document, error)
}

// Compile-time interface check.
var _ Fetcher = (*GitHub)(nil)

// GitHub fetches READMEs through the GitHub REST API and the raw content host.
type GitHub struct {
	http       *http.Client
	apiURL     string
	rawURL     string
	token      string
	retries    int
	retryDelay time.Duration
	logger     *log.Logger
}

// Option configures a GitHub client.
type Option func(*GitHub)

// WithToken sets a bearer token. Authenticated calls get a higher rate limit.
func WithToken(token string) Option {
	return func(g *GitHub) { g.token = token }
}

// WithAPIURL overrides the REST API root (GitHub Enterprise, tests).
func WithAPIURL(u string) Option {
	return func(g *GitHub) { g.apiURL = strings.TrimRight(u, "/") }
}

// WithRawURL overrides the raw content origin.
func WithRawURL(u string) Option {
	return func(g *GitHub) { g.rawURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *GitHub) { g.http = c }
}

// WithRetry sets the attempt count and initial backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(g *GitHub) {
		g.retries = max(attempts, 1)
		g.retryDelay = delay
	}
}

// WithLogger sets the client logger.
func WithLogger(l *log.Logger) Option {
	return func(g *GitHub) { g.logger = l }
}

// NewGitHub creates a client with a 10 second timeout and three attempts.
func NewGitHub(opts ...Option) *GitHub {
	g := &GitHub{
		http:       &http.Client{Timeout: DefaultTimeout},
		apiURL:     DefaultAPIURL,
		rawURL:     pipeline.DefaultOrigin,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// repoInfo is the part of the repository metadata we read.
type repoInfo struct {
	DefaultBranch string `json:"default_branch"`
}

// FetchReadme looks up the default branch of ref and returns the first
// README candidate present at its root. The returned Base points at the
// same origin and branch so relative links resolve next to the file.
func (g *GitHub) FetchReadme(ctx context.Context, ref RepoRef) (*Document, error) {
	branch, err := g.defaultBranch(ctx, ref)
	if err != nil {
		return nil, err
	}

	for _, name := range ReadmeCandidates {
		url := fmt.Sprintf("%s/%s/%s/%s/%s", g.rawURL, ref.Owner, ref.Repo, branch, name)
		body, err := g.get(ctx, url, false)
		if isNotFound(err) {
			g.logger.Debug("readme candidate missing", "repo", ref, "name", name)
			continue
		}
		if err != nil {
			return nil, err
		}

		return &Document{
			Markdown: string(body),
			Name:     name,
			Base: pipeline.Base{
				Namespace:  ref.Owner,
				Collection: ref.Repo,
				Revision:   branch,
				Origin:     g.rawURL,
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoReadme, ref)
}

// defaultBranch reads the repository metadata. An empty default_branch
// falls back to pipeline.DefaultRevision.
func (g *GitHub) defaultBranch(ctx context.Context, ref RepoRef) (string, error) {
	body, err := g.get(ctx, g.apiURL+"/repos/"+ref.String(), true)
	if isNotFound(err) {
		return "", fmt.Errorf("%w: %s", ErrRepoNotFound, ref)
	}
	if err != nil {
		return "", err
	}

	var info repoInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("%w: decoding repository metadata: %v", ErrNetwork, err)
	}
	if info.DefaultBranch == "" {
		return pipeline.DefaultRevision, nil
	}
	return info.DefaultBranch, nil
}

// get performs a GET with retry and returns the body.
func (g *GitHub) get(ctx context.Context, url string, api bool) ([]byte, error) {
	var body []byte
	err := Retry(ctx, g.retries, g.retryDelay, func() error {
		var err error
		body, err = g.doRequest(ctx, url, api)
		return err
	})
	return body, err
}

func (g *GitHub) doRequest(ctx context.Context, url string, api bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if api {
		req.Header.Set("Accept", "application/vnd.github.v3+json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	g.logger.Debug("GET", "url", url)
	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%w: reading body: %v", ErrNetwork, err)}
	}
	if len(body) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, url)
	}
	return body, nil
}

// checkStatus maps HTTP status codes to sentinel errors.
// 5xx responses are retryable; 403 and 429 with an exhausted quota are not.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
			return fmt.Errorf("%w (resets at unix %s)", ErrRateLimited, reset)
		}
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}

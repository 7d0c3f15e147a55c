// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-readmedocs/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI provider variable is set.
func inCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForRateLimit returns hints for GitHub API quota errors.
// Unauthenticated clients get 60 requests per hour; a token raises that.
func ForRateLimit(hasToken bool) string {
	if !hasToken {
		return format("set GITHUB_TOKEN (or --token) to raise the API rate limit")
	}
	return format("the token's quota is exhausted; wait for the reset or lower --workers")
}

// ForRepoNotFound returns hints for a 404 on the repository endpoint.
func ForRepoNotFound(hasToken bool) string {
	hints := []string{"check the owner/repo spelling"}
	if !hasToken {
		hints = append(hints, "private repositories need GITHUB_TOKEN")
	}
	return formatHints(hints)
}

// ForNoReadme lists the file names that were tried.
func ForNoReadme(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return format("looked for " + strings.Join(candidates, ", ") + " at the root of the default branch")
}

// ForInvalidRepoRef shows the accepted target forms.
func ForInvalidRepoRef() string {
	return format("use owner/repo, https://github.com/owner/repo or a path to a .md file")
}

// ForNetwork returns hints for connection failures.
// Detects CI/Docker environment where a proxy is the usual culprit.
func ForNetwork() string {
	var hints []string

	if (inCI() || IsInContainer()) && os.Getenv("HTTPS_PROXY") == "" && os.Getenv("https_proxy") == "" {
		hints = append(hints, "set HTTPS_PROXY if the runner sits behind a proxy")
	}
	hints = append(hints, "retry later or raise --timeout")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents or slow networks, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/readmedocs/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", or a path to a .css file")
}

// ForUnknownEngine lists the accepted engine names.
func ForUnknownEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("engines: " + strings.Join(engines, ", "))
}

// filepathSlash normalizes Windows separators for matching.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

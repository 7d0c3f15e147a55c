package source

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-readmedocs/internal/fileutil"
)

// Precompiled regex patterns for reference cleaning.
var (
	// GitHub web prefix, with or without scheme and www
	githubPrefix = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/?`)

	// Owner and repository names as GitHub allows them
	repoSegment = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// RepoRef names a GitHub repository.
type RepoRef struct {
	Owner string
	Repo  string
}

// String returns "owner/repo".
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Repo
}

// URL returns the repository's web address.
func (r RepoRef) URL() string {
	return "https://github.com/" + r.String()
}

// ParseRepoRef accepts "owner/repo" or a GitHub URL. Leading and trailing
// slashes and a ".git" suffix are dropped; path segments after the
// repository (tree/main/docs, issues, ...) are ignored.
func ParseRepoRef(s string) (RepoRef, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = githubPrefix.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")

	parts := strings.Split(cleaned, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: %q (want owner/repo)", ErrInvalidRepoRef, s)
	}

	ref := RepoRef{Owner: parts[0], Repo: strings.TrimSuffix(parts[1], ".git")}
	if !repoSegment.MatchString(ref.Owner) || !repoSegment.MatchString(ref.Repo) {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, s)
	}
	return ref, nil
}

// IsLocalTarget reports whether target names a file on disk rather than
// a repository. Paths with a separator that are not GitHub URLs, and
// Markdown file names, are local.
func IsLocalTarget(target string) bool {
	if githubPrefix.MatchString(target) || fileutil.IsURL(target) {
		return false
	}
	switch strings.ToLower(filepath.Ext(target)) {
	case ".md", ".markdown":
		return true
	}
	if fileutil.FileExists(target) {
		return true
	}
	return fileutil.IsFilePath(target) && (strings.HasPrefix(target, ".") || filepath.IsAbs(target))
}

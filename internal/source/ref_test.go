package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseRepoRef
// ---------------------------------------------------------------------------

func TestParseRepoRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    RepoRef
		wantErr error
	}{
		{name: "owner slash repo", input: "spf13/pflag", want: RepoRef{"spf13", "pflag"}},
		{name: "https URL", input: "https://github.com/golang/go", want: RepoRef{"golang", "go"}},
		{name: "www and trailing slash", input: "http://www.github.com/golang/go/", want: RepoRef{"golang", "go"}},
		{name: "git suffix", input: "https://github.com/golang/go.git", want: RepoRef{"golang", "go"}},
		{name: "scheme-less host", input: "github.com/yuin/goldmark", want: RepoRef{"yuin", "goldmark"}},
		{name: "deep link keeps first two segments", input: "https://github.com/yuin/goldmark/tree/master/ast", want: RepoRef{"yuin", "goldmark"}},
		{name: "surrounding space", input: "  org/repo  ", want: RepoRef{"org", "repo"}},
		{name: "single segment", input: "golang", wantErr: ErrInvalidRepoRef},
		{name: "empty", input: "", wantErr: ErrInvalidRepoRef},
		{name: "host only", input: "https://github.com/", wantErr: ErrInvalidRepoRef},
		{name: "invalid characters", input: "org/re po", wantErr: ErrInvalidRepoRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRepoRef(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRepoRef(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRepoRef(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRepoRef_StringAndURL(t *testing.T) {
	t.Parallel()

	ref := RepoRef{Owner: "org", Repo: "repo"}
	if got := ref.String(); got != "org/repo" {
		t.Errorf("String() = %q", got)
	}
	if got := ref.URL(); got != "https://github.com/org/repo" {
		t.Errorf("URL() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestIsLocalTarget
// ---------------------------------------------------------------------------

func TestIsLocalTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "NOTES")
	if err := os.WriteFile(existing, []byte("# x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{name: "markdown file name", target: "README.md", want: true},
		{name: "markdown extension upper", target: "docs/GUIDE.MARKDOWN", want: true},
		{name: "existing file", target: existing, want: true},
		{name: "dot relative path", target: "./docs/README", want: true},
		{name: "repository reference", target: "org/repo", want: false},
		{name: "GitHub URL", target: "https://github.com/org/repo", want: false},
		{name: "other URL", target: "https://example.com/README.md", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsLocalTarget(tt.target); got != tt.want {
				t.Errorf("IsLocalTarget(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

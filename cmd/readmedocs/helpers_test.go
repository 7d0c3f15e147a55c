package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	readmedocs "github.com/alnah/go-readmedocs"
	"github.com/alnah/go-readmedocs/internal/source"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake fetcher and environment
// ---------------------------------------------------------------------------

// demoReadme is a small README with nested headings and a relative image.
const demoReadme = "# Widgets\n\nMake widgets.\n\n## Install\n\nRun it.\n\n![logo](docs/logo.png)\n\n## Usage\n\n### Flags\n\nSome flags.\n"

// fakeFetcher serves documents keyed by "owner/repo".
type fakeFetcher struct {
	docs  map[string]string
	err   error
	calls atomic.Int32
}

func (f *fakeFetcher) FetchReadme(ctx context.Context, ref source.RepoRef) (*source.Document, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	md, ok := f.docs[ref.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", source.ErrRepoNotFound, ref)
	}
	return &source.Document{
		Markdown: md,
		Name:     "README.md",
		Base:     readmedocs.Base{Namespace: ref.Owner, Collection: ref.Repo, Revision: "main"},
	}, nil
}

// newTestEnv returns an environment with captured output, the given
// variables and a fixed clock.
func newTestEnv(vars map[string]string, fetcher source.Fetcher) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	env := &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		Fetcher: fetcher,
	}
	return env, stdout, stderr
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

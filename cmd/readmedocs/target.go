package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/alnah/go-readmedocs/internal/source"
)

// fallbackName is used when a target yields no usable file name.
const fallbackName = "readme"

// target is one command-line argument: a repository or a local file.
type target struct {
	arg  string
	ref  source.RepoRef
	path string // set for local files only
}

// parseTarget classifies arg. Anything that is not a local file must be a
// repository reference.
func parseTarget(arg string) (target, error) {
	if source.IsLocalTarget(arg) {
		return target{arg: arg, path: arg}, nil
	}
	ref, err := source.ParseRepoRef(arg)
	if err != nil {
		return target{}, err
	}
	return target{arg: arg, ref: ref}, nil
}

// parseTargets parses every argument, stopping at the first invalid one.
func parseTargets(args []string) ([]target, error) {
	targets := make([]target, 0, len(args))
	for _, arg := range args {
		t, err := parseTarget(arg)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// isLocal reports whether t names a file on disk.
func (t target) isLocal() bool {
	return t.path != ""
}

// load reads the local file or fetches the repository README.
func (t target) load(ctx context.Context, f source.Fetcher) (*source.Document, error) {
	if t.isLocal() {
		return source.ReadLocal(t.path)
	}
	return f.FetchReadme(ctx, t.ref)
}

// outputName derives the page file name: owner-repo for repositories and
// the file stem for local files, normalized to a slug.
func (t target) outputName() string {
	stem := t.ref.Owner + "-" + t.ref.Repo
	if t.isLocal() {
		base := filepath.Base(t.path)
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}

	name, err := slug.Normalize(stem)
	if err != nil || name == "" {
		name = fallbackName
	}
	return name + ".html"
}

// planOutputs maps each target to its output path under dir and rejects
// two targets that would write the same file.
func planOutputs(targets []target, dir string) ([]string, error) {
	paths := make([]string, len(targets))
	seen := make(map[string]string, len(targets))

	for i, t := range targets {
		p := filepath.Join(dir, t.outputName())
		if prev, ok := seen[p]; ok {
			return nil, fmt.Errorf("%w: %s and %s -> %s", ErrDuplicateOutput, prev, t.arg, p)
		}
		seen[p] = t.arg
		paths[i] = p
	}
	return paths, nil
}

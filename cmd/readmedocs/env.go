package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-readmedocs/internal/source"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// Fetcher retrieves repository READMEs. Nil means a GitHub client
	// built from the effective configuration.
	Fetcher source.Fetcher
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

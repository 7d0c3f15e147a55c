package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	readmedocs "github.com/alnah/go-readmedocs"
	"github.com/alnah/go-readmedocs/internal/assets"
	"github.com/alnah/go-readmedocs/internal/config"
	"github.com/alnah/go-readmedocs/internal/fileutil"
	"github.com/alnah/go-readmedocs/internal/page"
	"github.com/alnah/go-readmedocs/internal/source"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// stdoutOutput selects stdout instead of an output directory.
const stdoutOutput = "-"

// Sentinel errors for the render command.
var (
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrNoTarget        = errors.New("no target specified")
	ErrStdoutMultiple  = errors.New("stdout output needs exactly one target")
	ErrDuplicateOutput = errors.New("targets map to the same output file")
	ErrWriteHTML       = errors.New("failed to write HTML file")
)

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	Target     string
	OutputPath string
	Size       int
	Err        error
	Duration   time.Duration
}

// renderJob is one target with its planned output.
type renderJob struct {
	target     target
	outputPath string
}

// renderDeps is everything a job needs, shared across workers.
type renderDeps struct {
	fetcher  source.Fetcher
	renderer *readmedocs.Renderer
	builder  *page.Builder
	now      func() time.Time
	stdout   io.Writer // non-nil when writing the page to stdout
}

// runRender implements the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeEngineFlags(&flags.engine, cfg)
	mergeSourceFlags(&flags.source, cfg)
	mergePageFlags(&flags.page, cfg)
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	toStdout := flags.output == stdoutOutput
	if flags.output != "" && !toStdout {
		cfg.Output.Dir = flags.output
	}
	if err := validateMerged(cfg); err != nil {
		return err
	}

	if flags.printConfig {
		return printConfig(env.Stdout, cfg)
	}

	if len(positional) == 0 {
		return ErrNoTarget
	}
	if toStdout && len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrStdoutMultiple, len(positional))
	}

	targets, err := parseTargets(positional)
	if err != nil {
		return err
	}
	outputs, err := planOutputs(targets, cfg.Output.Dir)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, logLevel(flags.common.quiet, flags.common.verbose))

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}

	loader, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	builder, err := page.NewBuilder(loader, pageOptions(cfg)...)
	if err != nil {
		return err
	}

	deps := &renderDeps{
		fetcher:  newFetcher(cfg, env, logger),
		renderer: renderer,
		builder:  builder,
		now:      env.Now,
	}
	if toStdout {
		deps.stdout = env.Stdout
	}

	jobs := make([]renderJob, len(targets))
	for i, t := range targets {
		jobs[i] = renderJob{target: t, outputPath: outputs[i]}
	}

	workers := readmedocs.ResolveWorkers(cfg.Workers)
	logger.Debug("rendering", "targets", len(jobs), "workers", workers, "engine", renderer.Engine())

	results := renderBatch(ctx, deps, jobs, workers)

	// A lone target reports its own error so the exit code reflects it
	if len(results) == 1 && results[0].Err != nil {
		return fmt.Errorf("%s: %w", results[0].Target, results[0].Err)
	}
	if toStdout {
		return nil
	}

	if failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d render(s) failed", failed)
	}
	return nil
}

// printConfig writes the effective configuration as YAML with the token masked.
func printConfig(w io.Writer, cfg *config.Config) error {
	masked := *cfg
	if masked.Source.Token != "" {
		masked.Source.Token = "********"
	}
	out, err := config.Encode(&masked)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// renderBatch processes jobs concurrently, at most workers at a time.
// Results keep the order of jobs. One failure does not stop the others.
func renderBatch(ctx context.Context, deps *renderDeps, jobs []renderJob, workers int) []RenderResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]RenderResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = RenderResult{Target: job.target.arg, OutputPath: job.outputPath, Err: err}
				return nil
			}
			results[i] = renderOne(ctx, deps, job)
			return nil
		})
	}

	_ = g.Wait() // jobs record their own errors
	return results
}

// renderOne loads, renders and writes a single target.
func renderOne(ctx context.Context, deps *renderDeps, job renderJob) RenderResult {
	start := deps.now()
	result := RenderResult{
		Target:     job.target.arg,
		OutputPath: job.outputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = deps.now().Sub(start)
		return result
	}

	doc, err := job.target.load(ctx, deps.fetcher)
	if err != nil {
		return fail(err)
	}

	res, err := deps.renderer.Render(ctx, readmedocs.Input{Markdown: doc.Markdown, Base: doc.Base})
	if err != nil {
		return fail(err)
	}

	html, err := deps.builder.Build(ctx, page.Data{
		Namespace:   doc.Base.Namespace,
		Collection:  doc.Base.Collection,
		Title:       res.Title,
		Description: res.Meta.Description,
		Article:     res.HTML,
		Outline:     res.Outline,
	})
	if err != nil {
		return fail(err)
	}

	if deps.stdout != nil {
		if _, err := io.WriteString(deps.stdout, html); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
	} else if err := fileutil.WriteFileAtomic(job.outputPath, []byte(html), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	result.Size = len(html)
	result.Duration = deps.now().Sub(start)
	return result
}

// printResultsWithWriter outputs results to the environment's writers.
// Returns the number of failures.
func printResultsWithWriter(results []RenderResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Target, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.Target, r.OutputPath, humanize.Bytes(uint64(r.Size)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}

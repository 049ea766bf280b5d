package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	mdedit "github.com/Birphon/markdown-editor"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// renderJob represents a single file to process.
type renderJob struct {
	InputPath  string
	OutputPath string
}

// renderResult holds the outcome of a single conversion.
type renderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runRender converts markdown files to standalone HTML pages.
func runRender(args []string) error {
	flags, inputs, err := parseRenderFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	opts, err := serviceOptions(cfg, &flags.preview)
	if err != nil {
		return err
	}

	jobs, err := discoverJobs(inputs, flags.output)
	if err != nil {
		return err
	}

	pool := mdedit.NewServicePool(mdedit.ResolvePoolSize(flags.workers), opts...)
	defer pool.Close()

	results := renderBatch(context.Background(), pool, jobs)
	return printResults(results, flags.common.quiet, flags.common.verbose)
}

// discoverJobs expands the input arguments into render jobs. Directories
// are walked for .md/.markdown files; explicit files must carry a markdown
// extension.
func discoverJobs(inputs []string, output string) ([]renderJob, error) {
	var jobs []renderJob

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		if info.IsDir() {
			err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !isMarkdownFile(path) {
					return nil
				}
				jobs = append(jobs, renderJob{
					InputPath:  path,
					OutputPath: outputPathFor(path, input, output),
				})
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
			}
			continue
		}

		if !isMarkdownFile(input) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
		}
		out := output
		if out == "" || isDirectoryPath(out) {
			out = outputPathFor(input, filepath.Dir(input), output)
		}
		jobs = append(jobs, renderJob{InputPath: input, OutputPath: out})
	}

	return jobs, nil
}

// isMarkdownFile reports whether the path has a markdown extension.
func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// isDirectoryPath reports whether the path exists and is a directory.
func isDirectoryPath(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// outputPathFor maps an input file to its .html output path, preserving the
// layout relative to base when an output directory is set.
func outputPathFor(inputPath, base, output string) string {
	htmlName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), htmlName)
	}

	rel, err := filepath.Rel(base, filepath.Dir(inputPath))
	if err != nil {
		rel = "."
	}
	return filepath.Join(output, rel, htmlName)
}

// renderBatch converts all jobs in parallel, bounded by the pool size.
func renderBatch(ctx context.Context, pool *mdedit.ServicePool, jobs []renderJob) []renderResult {
	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job renderJob) {
			defer wg.Done()
			results[i] = renderFile(ctx, pool, job)
		}(i, job)
	}

	wg.Wait()
	return results
}

// renderFile converts one file using a service acquired from the pool.
func renderFile(ctx context.Context, pool *mdedit.ServicePool, job renderJob) renderResult {
	start := time.Now()
	result := renderResult{InputPath: job.InputPath, OutputPath: job.OutputPath}

	svc, err := pool.Acquire()
	if err != nil {
		result.Err = err
		return result
	}
	defer pool.Release(svc)

	data, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered from user input
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	page, err := svc.RenderPage(ctx, string(data))
	if err != nil {
		result.Err = err
		return result
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	if err := os.WriteFile(job.OutputPath, []byte(page), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResults reports per-file outcomes and returns the first error so the
// process exits non-zero when any file failed.
func printResults(results []renderResult, quiet, verbose bool) error {
	var firstErr error
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "OK   %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(os.Stderr, "OK   %s -> %s\n", r.InputPath, r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d converted, %d failed\n", len(results)-failed, failed)
	}
	return firstErr
}

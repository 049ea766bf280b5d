package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// previewFlags holds preview pipeline flags shared by serve, render, and
// export.
type previewFlags struct {
	engine     string
	escapeHTML bool
	style      string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common  commonFlags
	preview previewFlags
	addr    string
	file    string
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common  commonFlags
	preview previewFlags
	output  string
	workers int
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common  commonFlags
	preview previewFlags
	output  string
	size    string
	orient  string
	margin  float64
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addPreviewFlags adds preview pipeline flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "preview engine: lite, goldmark")
	fs.BoolVar(&f.escapeHTML, "escape-html", false, "escape HTML in input (lite engine)")
	fs.StringVarP(&f.style, "style", "s", "", "style name, CSS file path, or raw CSS")
}

// parseServeFlags parses flags for the serve command.
func parseServeFlags(args []string) (*serveFlags, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addPreviewFlags(fs, &f.preview)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :7350)")
	fs.StringVarP(&f.file, "file", "f", "", "markdown file to load as the initial document")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseRenderFlags parses flags for the render command and returns the
// remaining positional arguments (input files or directories).
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addPreviewFlags(fs, &f.preview)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseExportFlags parses flags for the export command and returns the
// remaining positional arguments.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	f := &exportFlags{}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addPreviewFlags(fs, &f.preview)
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orient, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.StringVar(&f.timeout, "timeout", "", "export timeout (e.g. 2m, 90s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

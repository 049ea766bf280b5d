package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdedit "github.com/Birphon/markdown-editor"
)

// runExport converts a single markdown file to PDF.
func runExport(args []string) error {
	flags, inputs, err := parseExportFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if len(inputs) != 1 {
		printExportUsage(os.Stderr)
		return ErrNoInput
	}
	input := inputs[0]
	if !isMarkdownFile(input) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, input)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	opts, err := serviceOptions(cfg, &flags.preview)
	if err != nil {
		return err
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: invalid timeout %q", errUsage, flags.timeout)
		}
		opts = append(opts, mdedit.WithTimeout(d))
	}

	page, err := pageSettings(cfg, flags)
	if err != nil {
		return err
	}

	svc, err := mdedit.NewService(opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	output := flags.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}

	start := time.Now()
	pdfBytes, err := svc.ExportPDF(context.Background(), string(data), page)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(os.Stderr, "OK   %s -> %s (%s)\n", input, output, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

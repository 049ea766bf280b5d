package main

import (
	"errors"
	"os"

	mdedit "github.com/Birphon/markdown-editor"
	"github.com/Birphon/markdown-editor/internal/config"
)

// Exit codes for the mdedit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during export
)

// errUsage marks usage errors raised by the dispatcher itself.
var errUsage = errors.New("usage error")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdedit.ErrBrowserConnect) ||
		errors.Is(err, mdedit.ErrPageCreate) ||
		errors.Is(err, mdedit.ErrPageLoad) ||
		errors.Is(err, mdedit.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, mdedit.ErrEmptyMarkdown) ||
		errors.Is(err, mdedit.ErrUnknownEngine) ||
		errors.Is(err, mdedit.ErrInvalidPageSize) ||
		errors.Is(err, mdedit.ErrInvalidOrientation) ||
		errors.Is(err, mdedit.ErrInvalidMargin) ||
		errors.Is(err, mdedit.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}

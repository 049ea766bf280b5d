package mdedit

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrUnknownFormat    = errors.New("unknown format identifier")
	ErrInvalidSelection = errors.New("invalid selection range")
	ErrInputTooLarge    = errors.New("markdown input exceeds maximum size")
	ErrHTMLConversion   = errors.New("HTML conversion failed")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Engine selection errors.
	ErrUnknownEngine = errors.New("unknown preview engine")
)

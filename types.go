package mdedit

import (
	"fmt"
	"strings"
	"time"
)

// Engine names for preview conversion.
const (
	EngineLite     = "lite"
	EngineGoldmark = "goldmark"
)

// ParseEngine validates an engine name (case-insensitive).
func ParseEngine(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", EngineLite:
		return EngineLite, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures exported PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	engine       string
	escapeHTML   bool
	maxInputSize int
	style        string
	timeout      time.Duration
}

// defaultTimeout bounds PDF export when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithEngine selects the preview conversion engine, EngineLite (default)
// or EngineGoldmark. Panics on unknown names (programmer error; use
// ParseEngine at untyped boundaries).
func WithEngine(engine string) Option {
	e, err := ParseEngine(engine)
	if err != nil {
		panic("mdedit: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.engine = e
	}
}

// WithEscapeHTML makes the lite engine escape HTML-significant characters
// in the input before conversion. Off by default: the editor historically
// passes raw input through, which is only safe for trusted documents. The
// goldmark engine escapes on its own and ignores this option.
func WithEscapeHTML(escape bool) Option {
	return func(s *Service) {
		s.cfg.escapeHTML = escape
	}
}

// WithMaxInputSize caps the byte size the lite engine will convert.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("mdedit: WithMaxInputSize must be positive")
	}
	return func(s *Service) {
		s.cfg.maxInputSize = n
	}
}

// WithStyle sets the CSS injected into the preview page shell. Accepts a
// built-in style name, a file path, or raw CSS; resolution happens at
// NewService.
func WithStyle(style string) Option {
	return func(s *Service) {
		s.cfg.style = style
	}
}

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdedit: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

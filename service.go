package mdedit

import (
	"context"
	"fmt"
	"os"

	"github.com/Birphon/markdown-editor/internal/assets"
	"github.com/Birphon/markdown-editor/internal/fileutil"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ markdownPreprocessor = (*textareaPreprocessor)(nil)
	_ htmlConverter        = (*liteConverter)(nil)
	_ htmlConverter        = (*goldmarkConverter)(nil)
	_ cssInjector          = (*cssInjection)(nil)
	_ pdfConverter         = (*rodConverter)(nil)
	_ pdfRenderer          = (*rodRenderer)(nil)
)

// Service orchestrates the preview pipeline: preprocessing, markdown to
// HTML conversion, page shell assembly, and optional PDF export.
// Create with NewService, use Render/RenderPage/ExportPDF, Close when done.
type Service struct {
	cfg           serviceConfig
	preprocessor  markdownPreprocessor
	converter     htmlConverter
	cssInjector   cssInjector
	pdfConverter  pdfConverter
	resolvedStyle string
}

// NewService creates a Service with default configuration: the lite engine,
// no input escaping, and the built-in preview stylesheet.
// Use options to customize behavior (e.g., WithEngine, WithEscapeHTML).
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			engine:       EngineLite,
			maxInputSize: DefaultMaxInputSize,
			timeout:      defaultTimeout,
		},
		preprocessor: &textareaPreprocessor{},
		cssInjector:  &cssInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create converter if not injected (e.g., by tests)
	if s.converter == nil {
		switch s.cfg.engine {
		case EngineGoldmark:
			s.converter = newGoldmarkConverter()
		default:
			s.converter = newLiteConverter(s.cfg.escapeHTML, s.cfg.maxInputSize)
		}
	}

	if err := s.resolveStyle(); err != nil {
		return nil, err
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// Render converts markdown text to an HTML fragment for the preview surface.
// The context is used for cancellation and timeout.
func (s *Service) Render(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyMarkdown
	}

	content := s.preprocessor.PreprocessMarkdown(ctx, text)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	fragment, err := s.converter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	return fragment, nil
}

// RenderPage converts markdown text to a complete HTML document with the
// configured stylesheet injected, suitable for standalone viewing and PDF
// export.
func (s *Service) RenderPage(ctx context.Context, text string) (string, error) {
	fragment, err := s.Render(ctx, text)
	if err != nil {
		return "", err
	}

	page := fmt.Sprintf(pageTemplate, fragment)
	page = s.cssInjector.InjectCSS(ctx, page, s.resolvedStyle)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return page, nil
}

// ExportPDF renders markdown text to PDF bytes via headless Chrome.
// Page may be nil, which selects the default page settings.
func (s *Service) ExportPDF(ctx context.Context, text string, page *PageSettings) ([]byte, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	htmlContent, err := s.RenderPage(ctx, text)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// Style returns the resolved CSS injected into rendered pages.
func (s *Service) Style() string {
	return s.resolvedStyle
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewService after options are applied.
func (s *Service) resolveStyle() error {
	input := s.cfg.style
	if input == "" {
		css, err := assets.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default style: %w", err)
		}
		s.resolvedStyle = css
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		s.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		s.resolvedStyle = input
		return nil
	}

	// Otherwise a built-in style name.
	css, err := assets.LoadStyle(input)
	if err != nil {
		return err
	}
	s.resolvedStyle = css
	return nil
}

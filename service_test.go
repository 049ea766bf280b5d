package mdedit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Mock implementations for testing.

type mockPreprocessor struct {
	called bool
	input  string
	output string
}

func (m *mockPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	m.called = true
	m.input = content
	if m.output != "" {
		return m.output
	}
	return content
}

type mockHTMLConverter struct {
	called bool
	input  string
	output string
	err    error
}

func (m *mockHTMLConverter) ToHTML(ctx context.Context, content string) (string, error) {
	m.called = true
	m.input = content
	if m.err != nil {
		return "", m.err
	}
	if m.output != "" {
		return m.output, nil
	}
	return "<p>" + content + "</p>", nil
}

type mockPDFConverter struct {
	called    bool
	inputHTML string
	inputOpts *pdfOptions
	output    []byte
	err       error
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	m.inputOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	return nil
}

// Test options for dependency injection (not exported).

func withPreprocessor(p markdownPreprocessor) Option {
	return func(s *Service) {
		s.preprocessor = p
	}
}

func withConverter(c htmlConverter) Option {
	return func(s *Service) {
		s.converter = c
	}
}

func withPDFConverter(c pdfConverter) Option {
	return func(s *Service) {
		s.pdfConverter = c
	}
}

func TestServiceRender(t *testing.T) {
	t.Parallel()

	t.Run("empty markdown is rejected", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService(withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		_, err = svc.Render(context.Background(), "")
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("Render(\"\") error = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("pipeline runs preprocessor then converter", func(t *testing.T) {
		t.Parallel()

		pre := &mockPreprocessor{output: "normalized"}
		conv := &mockHTMLConverter{}
		svc, err := NewService(
			withPreprocessor(pre),
			withConverter(conv),
			withPDFConverter(&mockPDFConverter{}),
		)
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		got, err := svc.Render(context.Background(), "raw\r\ninput")
		if err != nil {
			t.Fatalf("Render() error = %v, want nil", err)
		}

		if !pre.called {
			t.Error("preprocessor was not called")
		}
		if pre.input != "raw\r\ninput" {
			t.Errorf("preprocessor input = %q, want %q", pre.input, "raw\r\ninput")
		}
		if conv.input != "normalized" {
			t.Errorf("converter input = %q, want preprocessor output %q", conv.input, "normalized")
		}
		if got != "<p>normalized</p>" {
			t.Errorf("Render() = %q, want %q", got, "<p>normalized</p>")
		}
	})

	t.Run("converter error is wrapped", func(t *testing.T) {
		t.Parallel()

		convErr := errors.New("boom")
		svc, err := NewService(
			withConverter(&mockHTMLConverter{err: convErr}),
			withPDFConverter(&mockPDFConverter{}),
		)
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		_, err = svc.Render(context.Background(), "# Hi")
		if !errors.Is(err, convErr) {
			t.Errorf("Render() error = %v, want wrapped %v", err, convErr)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService(withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = svc.Render(ctx, "# Hi")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Render() error = %v, want context.Canceled", err)
		}
	})
}

func TestServiceRenderPage(t *testing.T) {
	t.Parallel()

	svc, err := NewService(
		WithStyle("body { color: red; }"),
		withPDFConverter(&mockPDFConverter{}),
	)
	if err != nil {
		t.Fatalf("NewService() error = %v, want nil", err)
	}
	defer svc.Close()

	page, err := svc.RenderPage(context.Background(), "**bold**")
	if err != nil {
		t.Fatalf("RenderPage() error = %v, want nil", err)
	}

	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("RenderPage() does not start with doctype: %q", page[:min(40, len(page))])
	}
	if !strings.Contains(page, "<strong>bold</strong>") {
		t.Errorf("RenderPage() missing converted fragment: %q", page)
	}
	if !strings.Contains(page, "<style>body { color: red; }</style>") {
		t.Errorf("RenderPage() missing injected style block: %q", page)
	}
	if !strings.Contains(page, "</head>") {
		t.Errorf("RenderPage() missing head close: %q", page)
	}
}

func TestServiceExportPDF(t *testing.T) {
	t.Parallel()

	t.Run("renders page then converts", func(t *testing.T) {
		t.Parallel()

		pdf := &mockPDFConverter{output: []byte("%PDF-out")}
		svc, err := NewService(withPDFConverter(pdf))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		got, err := svc.ExportPDF(context.Background(), "# Title", nil)
		if err != nil {
			t.Fatalf("ExportPDF() error = %v, want nil", err)
		}

		if string(got) != "%PDF-out" {
			t.Errorf("ExportPDF() = %q, want %q", got, "%PDF-out")
		}
		if !pdf.called {
			t.Fatal("PDF converter was not called")
		}
		if !strings.Contains(pdf.inputHTML, "<h1") {
			t.Errorf("PDF converter input missing heading: %q", pdf.inputHTML)
		}
		if pdf.inputOpts == nil || pdf.inputOpts.Page != nil {
			t.Errorf("PDF options page = %+v, want nil (defaults)", pdf.inputOpts)
		}
	})

	t.Run("invalid page settings are rejected before rendering", func(t *testing.T) {
		t.Parallel()

		pdf := &mockPDFConverter{}
		svc, err := NewService(withPDFConverter(pdf))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		bad := &PageSettings{Size: "tabloid", Orientation: OrientationPortrait, Margin: DefaultMargin}
		_, err = svc.ExportPDF(context.Background(), "# Title", bad)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("ExportPDF() error = %v, want ErrInvalidPageSize", err)
		}
		if pdf.called {
			t.Error("PDF converter was called despite invalid page settings")
		}
	})

	t.Run("converter error is wrapped", func(t *testing.T) {
		t.Parallel()

		pdfErr := errors.New("browser exploded")
		svc, err := NewService(withPDFConverter(&mockPDFConverter{err: pdfErr}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		_, err = svc.ExportPDF(context.Background(), "# Title", nil)
		if !errors.Is(err, pdfErr) {
			t.Errorf("ExportPDF() error = %v, want wrapped %v", err, pdfErr)
		}
	})
}

func TestServiceEngineSelection(t *testing.T) {
	t.Parallel()

	t.Run("lite is the default", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService(withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		if _, ok := svc.converter.(*liteConverter); !ok {
			t.Errorf("converter = %T, want *liteConverter", svc.converter)
		}
	})

	t.Run("goldmark on request", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService(WithEngine(EngineGoldmark), withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		if _, ok := svc.converter.(*goldmarkConverter); !ok {
			t.Errorf("converter = %T, want *goldmarkConverter", svc.converter)
		}
	})
}

func TestServiceResolveStyle(t *testing.T) {
	t.Parallel()

	t.Run("default style when unset", func(t *testing.T) {
		t.Parallel()

		svc, err := NewService(withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		if svc.Style() == "" {
			t.Error("Style() is empty, want built-in default CSS")
		}
	})

	t.Run("raw CSS passes through", func(t *testing.T) {
		t.Parallel()

		css := "h1 { font-size: 2rem; }"
		svc, err := NewService(WithStyle(css), withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		if svc.Style() != css {
			t.Errorf("Style() = %q, want %q", svc.Style(), css)
		}
	})

	t.Run("file path is read", func(t *testing.T) {
		t.Parallel()

		css := "p { margin: 0; }"
		path := filepath.Join(t.TempDir(), "custom.css")
		if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
			t.Fatalf("writing style file: %v", err)
		}

		svc, err := NewService(WithStyle(path), withPDFConverter(&mockPDFConverter{}))
		if err != nil {
			t.Fatalf("NewService() error = %v, want nil", err)
		}
		defer svc.Close()

		if svc.Style() != css {
			t.Errorf("Style() = %q, want file contents %q", svc.Style(), css)
		}
	})

	t.Run("unknown style name fails", func(t *testing.T) {
		t.Parallel()

		_, err := NewService(WithStyle("no-such-style"), withPDFConverter(&mockPDFConverter{}))
		if err == nil {
			t.Fatal("NewService() error = nil, want style lookup failure")
		}
	})
}

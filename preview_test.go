package mdedit

import (
	"context"
	"strings"
	"testing"
)

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	injector := &cssInjection{}

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "before head close",
			html:     "<html><head><title>x</title></head><body></body></html>",
			css:      "body{color:red}",
			expected: "<html><head><title>x</title><style>body{color:red}</style></head><body></body></html>",
		},
		{
			name:     "after body open when no head",
			html:     `<html><body class="dark"><p>hi</p></body></html>`,
			css:      "p{margin:0}",
			expected: `<html><body class="dark"><style>p{margin:0}</style><p>hi</p></body></html>`,
		},
		{
			name:     "prepended when neither tag exists",
			html:     "<p>fragment</p>",
			css:      "p{margin:0}",
			expected: "<style>p{margin:0}</style><p>fragment</p>",
		},
		{
			name:     "uppercase head tag",
			html:     "<HTML><HEAD></HEAD><BODY></BODY></HTML>",
			css:      "b{}",
			expected: "<HTML><HEAD><style>b{}</style></HEAD><BODY></BODY></HTML>",
		},
		{
			name:     "empty css is a no-op",
			html:     "<html><head></head></html>",
			css:      "",
			expected: "<html><head></head></html>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSSCancelledContext(t *testing.T) {
	t.Parallel()

	injector := &cssInjection{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head></html>"
	got := injector.InjectCSS(ctx, html, "body{}")
	if got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want untouched input", got)
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	injector := &cssInjection{}
	got := injector.InjectCSS(context.Background(), "<html><head></head></html>", "a{}</style><script>alert(1)</script>")
	if strings.Contains(got, "</style><script>") {
		t.Errorf("InjectCSS() did not neutralize style breakout: %q", got)
	}
	if !strings.Contains(got, `<\/style>`) {
		t.Errorf("InjectCSS() missing escaped close sequence: %q", got)
	}
}

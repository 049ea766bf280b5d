package mdedit

import (
	"errors"
	"testing"
)

func TestRegistryDescriptors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format     Format
		wantKind   Kind
		wantMarker string
	}{
		{FormatBold, KindInline, "**"},
		{FormatItalic, KindInline, "*"},
		{FormatStrikethrough, KindInline, "~~"},
		{FormatCode, KindInline, "`"},
		{FormatH1, KindLine, "# "},
		{FormatH2, KindLine, "## "},
		{FormatH3, KindLine, "### "},
		{FormatQuote, KindLine, "> "},
		{FormatBulletList, KindLine, "- "},
		{FormatNumberList, KindLine, "1. "},
		{FormatCodeBlock, KindBlock, "```\n"},
		{FormatHorizontal, KindSpecial, "\n---\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			d, ok := Lookup(tt.format)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.format)
			}
			if d.Kind != tt.wantKind {
				t.Errorf("Lookup(%q) kind = %v, want %v", tt.format, d.Kind, tt.wantKind)
			}
			if d.Marker != tt.wantMarker {
				t.Errorf("Lookup(%q) marker = %q, want %q", tt.format, d.Marker, tt.wantMarker)
			}
		})
	}
}

func TestRegistryCodeBlockEndMarker(t *testing.T) {
	t.Parallel()

	d, ok := Lookup(FormatCodeBlock)
	if !ok {
		t.Fatal("Lookup(codeBlock) not found")
	}
	if d.EndMarker != "\n```" {
		t.Errorf("codeBlock end marker = %q, want %q", d.EndMarker, "\n```")
	}
}

func TestRegistryHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   Format
		input    string
		expected string
	}{
		{FormatLink, "here", "[here](url)"},
		{FormatLink, "", "[](url)"},
		{FormatImage, "alt text", "![alt text](url)"},
		{FormatImage, "", "![](url)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.format)+"/"+tt.input, func(t *testing.T) {
			t.Parallel()

			d, ok := Lookup(tt.format)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.format)
			}
			if d.Handler == nil {
				t.Fatalf("Lookup(%q) has no handler", tt.format)
			}
			if got := d.Handler(tt.input); got != tt.expected {
				t.Errorf("handler(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		f := f
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %q", f, got)
		}
	}

	if _, err := ParseFormat("blink"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(unknown) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := ParseFormat(""); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(empty) error = %v, want ErrUnknownFormat", err)
	}
}

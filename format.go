package mdedit

import "fmt"

// Format identifies a toolbar formatting action.
// The set of formats is closed; ParseFormat guards the string boundary.
type Format string

// Format identifiers.
const (
	FormatBold          Format = "bold"
	FormatItalic        Format = "italic"
	FormatStrikethrough Format = "strikethrough"
	FormatCode          Format = "code"
	FormatH1            Format = "h1"
	FormatH2            Format = "h2"
	FormatH3            Format = "h3"
	FormatQuote         Format = "quote"
	FormatBulletList    Format = "bulletList"
	FormatNumberList    Format = "numberList"
	FormatCodeBlock     Format = "codeBlock"
	FormatHorizontal    Format = "horizontalRule"
	FormatLink          Format = "link"
	FormatImage         Format = "image"
)

// Kind determines how a format's markers are applied relative to the
// selection.
type Kind int

// Structural kinds.
const (
	// KindInline wraps the selection symmetrically and toggles off when the
	// selection is exactly marker+content+marker.
	KindInline Kind = iota

	// KindLine toggles the marker at the start of the line containing the
	// selection start.
	KindLine

	// KindBlock wraps the selection in marker/end marker unconditionally.
	// Repeated application nests.
	KindBlock

	// KindSpecial either rewrites the selected text through a handler or,
	// with no handler, inserts the marker without consuming the selection.
	KindSpecial
)

// Descriptor describes how a format manipulates text.
type Descriptor struct {
	Kind      Kind
	Marker    string
	EndMarker string              // block kind only
	Handler   func(string) string // special kind only; nil for plain insertion
}

// registry is the fixed format table. Built once, never mutated.
var registry = map[Format]Descriptor{
	FormatBold:          {Kind: KindInline, Marker: "**"},
	FormatItalic:        {Kind: KindInline, Marker: "*"},
	FormatStrikethrough: {Kind: KindInline, Marker: "~~"},
	FormatCode:          {Kind: KindInline, Marker: "`"},
	FormatH1:            {Kind: KindLine, Marker: "# "},
	FormatH2:            {Kind: KindLine, Marker: "## "},
	FormatH3:            {Kind: KindLine, Marker: "### "},
	FormatQuote:         {Kind: KindLine, Marker: "> "},
	FormatBulletList:    {Kind: KindLine, Marker: "- "},
	FormatNumberList:    {Kind: KindLine, Marker: "1. "},
	FormatCodeBlock:     {Kind: KindBlock, Marker: "```\n", EndMarker: "\n```"},
	FormatHorizontal:    {Kind: KindSpecial, Marker: "\n---\n"},
	FormatLink:          {Kind: KindSpecial, Handler: linkHandler},
	FormatImage:         {Kind: KindSpecial, Handler: imageHandler},
}

// linkHandler rewrites the selection into a markdown link template.
// An empty selection yields "[](url)".
func linkHandler(selected string) string {
	return "[" + selected + "](url)"
}

// imageHandler rewrites the selection into a markdown image template.
func imageHandler(selected string) string {
	return "![" + selected + "](url)"
}

// Lookup returns the descriptor for a format.
// The registry is closed, so a miss indicates a caller bug.
func Lookup(f Format) (Descriptor, bool) {
	d, ok := registry[f]
	return d, ok
}

// ParseFormat validates a format identifier received from an untyped
// boundary (HTTP, flags) and converts it to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := registry[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Formats returns all registered format identifiers.
// Intended for help output and completion; order is unspecified.
func Formats() []Format {
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	return out
}

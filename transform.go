package mdedit

import (
	"fmt"
	"strings"
)

// TransformResult is the outcome of a formatting action.
type TransformResult struct {
	Text   string // full document text after the action
	Cursor int    // byte offset where the caret should land
}

// Transform applies a formatting action to text at the given selection and
// returns the new text and caret position. It is a pure function; Session
// wraps it with document state and caret scheduling.
func Transform(text string, sel Selection, f Format) (TransformResult, error) {
	if err := sel.Validate(text); err != nil {
		return TransformResult{}, err
	}

	d, ok := Lookup(f)
	if !ok {
		return TransformResult{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	switch d.Kind {
	case KindInline:
		return toggleInline(text, sel, d.Marker), nil
	case KindLine:
		return toggleLinePrefix(text, sel, d.Marker), nil
	case KindBlock:
		return wrapBlock(text, sel, d.Marker, d.EndMarker), nil
	case KindSpecial:
		return applySpecial(text, sel, d), nil
	}

	// Unreachable: the registry only contains the kinds above.
	return TransformResult{}, fmt.Errorf("%w: %q has unsupported kind", ErrUnknownFormat, f)
}

// isWrapped reports whether the selected text is exactly
// marker+content+marker. The check is literal prefix/suffix comparison, and
// the selection must be long enough to hold both markers without overlap.
// A selection of the bare inner text with markers outside it is deliberately
// not detected; toggling only recognizes fully selected markup.
func isWrapped(selected, marker string) bool {
	return len(selected) >= 2*len(marker) &&
		strings.HasPrefix(selected, marker) &&
		strings.HasSuffix(selected, marker)
}

// toggleInline wraps the selection in the marker, or unwraps it when the
// selection already carries the marker on both ends. The caret lands at the
// end of the produced span.
func toggleInline(text string, sel Selection, marker string) TransformResult {
	selected := text[sel.Start:sel.End]

	if isWrapped(selected, marker) {
		inner := selected[len(marker) : len(selected)-len(marker)]
		return TransformResult{
			Text:   text[:sel.Start] + inner + text[sel.End:],
			Cursor: sel.Start + len(inner),
		}
	}

	wrapped := marker + selected + marker
	return TransformResult{
		Text:   text[:sel.Start] + wrapped + text[sel.End:],
		Cursor: sel.Start + len(wrapped),
	}
}

// toggleLinePrefix toggles the marker at the start of the line containing
// the selection start. A selection spanning multiple lines still affects
// only that first line. The caret lands at the end of the modified line.
func toggleLinePrefix(text string, sel Selection, marker string) TransformResult {
	lineStart, lineEnd := lineBounds(text, sel.Start)
	line := text[lineStart:lineEnd]

	if strings.HasPrefix(line, marker) {
		return TransformResult{
			Text:   text[:lineStart] + line[len(marker):] + text[lineEnd:],
			Cursor: lineEnd - len(marker),
		}
	}

	return TransformResult{
		Text:   text[:lineStart] + marker + line + text[lineEnd:],
		Cursor: lineEnd + len(marker),
	}
}

// wrapBlock wraps the selection in marker/endMarker with no toggle:
// applying it to an already fenced selection nests the fences.
func wrapBlock(text string, sel Selection, marker, endMarker string) TransformResult {
	selected := text[sel.Start:sel.End]
	block := marker + selected + endMarker
	return TransformResult{
		Text:   text[:sel.Start] + block + text[sel.End:],
		Cursor: sel.Start + len(block),
	}
}

// applySpecial runs the format's handler over the selected text, or, when
// the format has no handler, inserts the marker at the selection start
// without consuming the selection.
func applySpecial(text string, sel Selection, d Descriptor) TransformResult {
	if d.Handler != nil {
		repl := d.Handler(text[sel.Start:sel.End])
		return TransformResult{
			Text:   text[:sel.Start] + repl + text[sel.End:],
			Cursor: sel.Start + len(repl),
		}
	}

	return TransformResult{
		Text:   text[:sel.Start] + d.Marker + text[sel.Start:],
		Cursor: sel.Start + len(d.Marker),
	}
}

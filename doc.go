// Package mdedit implements the backend of a browser-based markdown editor:
// selection-aware formatting actions and markdown-to-HTML preview rendering.
//
// # Quick Start
//
// Create a session around the document text, apply a toolbar action, and
// render the preview:
//
//	sess := mdedit.NewSession("hello world")
//	res, err := sess.Apply(mdedit.FormatBold, mdedit.Selection{Start: 0, End: 5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Text == "**hello** world", res.Cursor == 9
//
//	svc, err := mdedit.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := svc.Render(ctx, res.Text)
//
// # Formatting Model
//
// Formats are a closed enumeration looked up in a fixed registry. Each format
// has a structural kind that decides how its marker is applied relative to
// the selection:
//
//   - inline: symmetric wrap toggled against the exact selection (bold,
//     italic, strikethrough, inline code)
//   - line: marker toggled at the start of the line containing the selection
//     start (headings, blockquote, list items)
//   - block: marker and end marker wrap the selection unconditionally
//     (fenced code block)
//   - special: custom replacement of the selected text (link, image) or a
//     plain insertion (horizontal rule)
//
// Selection offsets are byte offsets into the UTF-8 document text. Malformed
// selections are rejected with ErrInvalidSelection, never clamped.
//
// # Preview Pipeline
//
// The preview service runs these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line limits)
//  2. Markdown to HTML conversion via the lite rule engine or Goldmark
//  3. Page shell assembly with injected CSS
//
// The lite engine is a fixed, ordered list of pattern substitutions matching
// the editor's toolbar vocabulary. Rule order is part of its contract. It
// does not escape HTML found in the input unless WithEscapeHTML(true) is
// set; see Service for the configuration surface.
//
// # PDF Export
//
// Service.ExportPDF renders the assembled preview page using headless Chrome
// (go-rod). Chrome is launched lazily on first export; set ROD_BROWSER_BIN to
// use a pre-installed browser. The sandbox is disabled automatically when
// ROD_BROWSER_BIN is set or CI=true.
//
// # Parallel Rendering
//
// For batch conversion, ServicePool manages lazily created Service instances:
//
//	pool := mdedit.NewServicePool(4)
//	defer pool.Close()
//
//	svc, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(svc)
package mdedit

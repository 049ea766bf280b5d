package mdedit

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// rule is one pattern-substitution stage of the lite engine.
type rule struct {
	pattern *regexp.Regexp
	repl    string
}

// liteRules is the ordered substitution pipeline. The order is a contract:
// block-level rules run before inline rules so fenced content is wrapped
// before emphasis matching, and bold runs before italic so `*` inside
// `**...**` is not matched on its own. Do not re-sort.
var liteRules = []rule{
	// 1. Fenced code block (non-greedy, spans newlines)
	{regexp.MustCompile("(?s)```\n?(.*?)\n?```"), "<pre><code>${1}</code></pre>"},
	// 2-4. Headings, deepest first
	{regexp.MustCompile(`(?m)^### (.*)$`), "<h3>${1}</h3>"},
	{regexp.MustCompile(`(?m)^## (.*)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^# (.*)$`), "<h1>${1}</h1>"},
	// 5. Blockquote line
	{regexp.MustCompile(`(?m)^> (.*)$`), "<blockquote>${1}</blockquote>"},
	// 6. Numbered list line; adjacent items are merged in postprocessing
	{regexp.MustCompile(`(?m)^\d+\. (.*)$`), "<ol><li>${1}</li></ol>"},
	// 7. Bullet list line
	{regexp.MustCompile(`(?m)^- (.*)$`), "<ul><li>${1}</li></ul>"},
	// 8. Horizontal rule line
	{regexp.MustCompile(`(?m)^---$`), "<hr>"},
	// 9. Bold before italic
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>${1}</strong>"},
	// 10. Italic
	{regexp.MustCompile(`\*(.*?)\*`), "<em>${1}</em>"},
	// 11. Inline code
	{regexp.MustCompile("`(.*?)`"), "<code>${1}</code>"},
	// 12. Strikethrough
	{regexp.MustCompile(`~~(.*?)~~`), "<del>${1}</del>"},
	// 13. Link
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), `<a href="${2}">${1}</a>`},
	// 14. Image
	{regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`), `<img src="${2}" alt="${1}">`},
}

// List boundary collapse patterns: consecutive single-item lists produced by
// rules 6 and 7 merge into one list element.
var (
	orderedBoundary   = regexp.MustCompile(`</ol>\n?<ol>`)
	unorderedBoundary = regexp.MustCompile(`</ul>\n?<ul>`)
)

// DefaultMaxInputSize caps lite engine input (1 MiB). The rules use
// backtracking patterns; bounding the input bounds their worst case.
const DefaultMaxInputSize = 1 << 20

// liteConverter converts markdown to an HTML fragment by ordered pattern
// substitution. It covers exactly the constructs the toolbar can produce;
// it is not a CommonMark parser.
type liteConverter struct {
	escapeHTML   bool
	maxInputSize int
}

// newLiteConverter creates a liteConverter with the default input cap.
func newLiteConverter(escapeHTML bool, maxInputSize int) *liteConverter {
	if maxInputSize <= 0 {
		maxInputSize = DefaultMaxInputSize
	}
	return &liteConverter{escapeHTML: escapeHTML, maxInputSize: maxInputSize}
}

// ToHTML runs the substitution pipeline over content and returns an HTML
// fragment. When escapeHTML is unset, HTML-significant characters in the
// input pass through untouched; the output is then only safe for trusted
// input (see Service.WithEscapeHTML).
func (c *liteConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(content) > c.maxInputSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(content), c.maxInputSize)
	}

	if c.escapeHTML {
		content = html.EscapeString(content)
	}

	for _, r := range liteRules {
		content = r.pattern.ReplaceAllString(content, r.repl)
	}

	content = collapseListBoundaries(content)
	content = strings.ReplaceAll(content, "\n", "<br>")
	return content, nil
}

// collapseListBoundaries merges consecutive same-type single-item lists.
func collapseListBoundaries(content string) string {
	content = orderedBoundary.ReplaceAllString(content, "")
	content = unorderedBoundary.ReplaceAllString(content, "")
	return content
}

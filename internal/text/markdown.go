package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// FromMarkdown parses source as Markdown and extracts its plain text.
// Inline markup (links, emphasis, code spans, images) reduces to the
// visible text; block boundaries become blank lines so paragraph
// splitting still works on the result.
func FromMarkdown(source []byte) string {
	reader := gmtext.NewReader(source)
	doc := goldmark.DefaultParser().Parse(reader)

	var blocks []string
	child := doc.FirstChild()
	for child != nil {
		block := extractInline(child, source)
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.TrimSpace(block))
		}
		child = child.NextSibling()
	}
	return strings.Join(blocks, "\n\n")
}

// extractInline collects the visible text under n, inserting spaces
// for line breaks between inline segments.
func extractInline(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.AutoLink:
			sb.Write(t.URL(source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

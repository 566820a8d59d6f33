package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var htmlEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// ToHTML renders markdown to HTML for the preview command. GFM tables must
// work here because the schema documentation emits them.
func ToHTML(text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlEngine.Convert([]byte(text), &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

package sitepreview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var mdConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// markdownMeta is the front matter recognized on markdown pages.
type markdownMeta struct {
	Title  string `yaml:"title"`
	Layout string `yaml:"layout"`
}

// RenderMarkdown converts the markdown page at pagePath to HTML and
// runs it through the same layout pipeline as HTML pages. Front matter
// on markdown pages is parsed strictly (YAML), unlike the line-split
// extraction used for pre-built HTML.
func (p *Processor) RenderMarkdown(content, pagePath string) (string, error) {
	var meta markdownMeta
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return "", fmt.Errorf("sitepreview: parse front matter in %s: %w", pagePath, err)
	}

	var buf bytes.Buffer
	if err := mdConverter.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("sitepreview: convert %s: %w", pagePath, err)
	}
	if meta.Layout == "" {
		return buf.String(), nil
	}
	return p.wrapLayout(buf.String(), meta.Layout, meta.Title, pagePath)
}

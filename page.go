package sitepreview

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// The two GitHub Pages asset expressions the Cayman theme emits. They
// are rewritten to plain URLs before the generic erasure pass so the
// stylesheet links survive.
const (
	ghPagesStyleExpr  = "{{ '/assets/css/style.css?v=' | append: site.github.build_revision | relative_url }}"
	ghPagesCustomExpr = "{{ '/assets/css/custom.css' | relative_url }}"
)

const contentPlaceholder = "{{ content }}"

var (
	liquidTagRe = regexp.MustCompile(`(?s)\{\%.*?\%\}`)
	liquidVarRe = regexp.MustCompile(`(?s)\{\{.*?\}\}`)
)

// templateVar is one known placeholder and its resolved value.
type templateVar struct {
	name  string
	value string
}

// Processor turns a site's source pages into plain HTML: it strips
// front matter, wraps the body in its layout, substitutes the known
// title/description placeholders, and erases any leftover Liquid
// syntax. Processors are stateless aside from read-only site config
// and are safe for concurrent use.
type Processor struct {
	site SiteConfig
}

// NewProcessor creates a Processor using the given site configuration.
func NewProcessor(site SiteConfig) *Processor {
	return &Processor{site: site}
}

// Render processes the content of the HTML page at pagePath. Pages
// without a front-matter block pass through unmodified. An error is
// only returned for I/O failures reading a referenced layout; a layout
// that simply does not exist leaves the bare body.
func (p *Processor) Render(content, pagePath string) (string, error) {
	fm, body := SplitFrontMatter(content)
	layout, ok := fm["layout"]
	if !ok {
		return body, nil
	}
	return p.wrapLayout(body, layout, fm["title"], pagePath)
}

// wrapLayout loads _layouts/<layout>.html relative to the page's
// directory, substitutes the body at the content placeholder, and runs
// the variable-erasure pass over the result.
func (p *Processor) wrapLayout(body, layout, title, pagePath string) (string, error) {
	layoutPath := filepath.Join(filepath.Dir(pagePath), "_layouts", layout+".html")
	raw, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return body, nil
		}
		return "", fmt.Errorf("sitepreview: read layout %s: %w", layoutPath, err)
	}
	out := strings.ReplaceAll(string(raw), contentPlaceholder, body)

	if title == "" {
		title = p.site.Title
	}
	return p.EraseVariables(out, []templateVar{
		{"page.title", title},
		{"site.title", p.site.Title},
		{"site.description", p.site.Description},
	}), nil
}

// EraseVariables resolves the known placeholders in content and strips
// any remaining templating syntax, producing plain HTML.
func (p *Processor) EraseVariables(content string, vars []templateVar) string {
	content = strings.ReplaceAll(content, ghPagesStyleExpr, "/assets/css/style.css")
	content = strings.ReplaceAll(content, ghPagesCustomExpr, "/assets/css/custom.css")

	for _, v := range vars {
		// {% if VAR %}...{% endif %} collapses to the value when set,
		// to nothing when empty.
		ifRe := regexp.MustCompile(`(?s)\{\% if ` + regexp.QuoteMeta(v.name) + ` \%\}.*?\{\% endif \%\}`)
		content = ifRe.ReplaceAllLiteralString(content, v.value)
		content = strings.ReplaceAll(content, "{{ "+v.name+" }}", v.value)
	}

	content = liquidTagRe.ReplaceAllString(content, "")
	content = liquidVarRe.ReplaceAllString(content, "")
	return content
}

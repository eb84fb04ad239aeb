package sitepreview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSiteFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testSite() SiteConfig {
	return SiteConfig{
		Title:       "Test Site",
		Description: "A site under test",
	}
}

func TestRenderWithoutFrontMatterPassesThrough(t *testing.T) {
	p := NewProcessor(testSite())
	content := "<html><body><h1>Plain</h1></body></html>"

	out, err := p.Render(content, "page.html")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != content {
		t.Errorf("out = %q, want content unmodified", out)
	}
}

func TestRenderStripsFrontMatterWithoutLayout(t *testing.T) {
	p := NewProcessor(testSite())
	out, err := p.Render("---\ntitle: No Layout\n---\n<p>hi</p>", "page.html")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "<p>hi</p>" {
		t.Errorf("out = %q, want bare body", out)
	}
}

func TestRenderWrapsLayout(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "_layouts/default.html",
		"<header>{{ site.title }}</header>\n{{ content }}\n<footer>end</footer>")
	pagePath := writeSiteFile(t, root, "page.html", "---\nlayout: default\n---\n<p>the body</p>")

	p := NewProcessor(testSite())
	raw, _ := os.ReadFile(pagePath)
	out, err := p.Render(string(raw), pagePath)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "<p>the body</p>") {
		t.Errorf("output missing page body: %q", out)
	}
	if !strings.Contains(out, "<header>Test Site</header>") {
		t.Errorf("output missing layout markup with site title: %q", out)
	}
	if !strings.Contains(out, "<footer>end</footer>") {
		t.Errorf("output missing surrounding layout markup: %q", out)
	}
	if strings.Contains(out, "{{ content }}") {
		t.Errorf("content placeholder survived: %q", out)
	}
}

func TestRenderPageTitleFallsBackToSiteTitle(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "_layouts/default.html", "<title>{{ page.title }}</title>{{ content }}")
	pagePath := filepath.Join(root, "page.html")

	p := NewProcessor(testSite())

	out, err := p.Render("---\nlayout: default\ntitle: My Page\n---\nbody", pagePath)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "<title>My Page</title>") {
		t.Errorf("page title not substituted: %q", out)
	}

	out, err = p.Render("---\nlayout: default\n---\nbody", pagePath)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "<title>Test Site</title>") {
		t.Errorf("site title fallback not applied: %q", out)
	}
}

func TestRenderMissingLayoutServesBody(t *testing.T) {
	root := t.TempDir()
	p := NewProcessor(testSite())

	out, err := p.Render("---\nlayout: nope\n---\n<p>still here</p>", filepath.Join(root, "page.html"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "<p>still here</p>" {
		t.Errorf("out = %q, want bare body when layout is missing", out)
	}
}

func TestRenderUnreadableLayoutReturnsError(t *testing.T) {
	root := t.TempDir()
	// A directory where the layout file should be forces a read error.
	if err := os.MkdirAll(filepath.Join(root, "_layouts", "broken.html"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := NewProcessor(testSite())

	_, err := p.Render("---\nlayout: broken\n---\nbody", filepath.Join(root, "page.html"))
	if err == nil {
		t.Fatal("expected an error for an unreadable layout")
	}
}

func TestEraseVariablesIfBlocks(t *testing.T) {
	p := NewProcessor(testSite())
	vars := []templateVar{{"page.title", "My Page"}, {"site.description", ""}}

	out := p.EraseVariables("{% if page.title %}<h1>{{ page.title }}</h1>{% endif %}", vars)
	if out != "My Page" {
		t.Errorf("out = %q, want if-block replaced by value", out)
	}

	out = p.EraseVariables("before{% if site.description %}never{% endif %}after", vars)
	if out != "beforeafter" {
		t.Errorf("out = %q, want empty value to erase the block", out)
	}
}

func TestEraseVariablesStripsUnknownSyntax(t *testing.T) {
	p := NewProcessor(testSite())
	out := p.EraseVariables("a{% assign x = 1 %}b{{ some.unknown }}c", nil)
	if out != "abc" {
		t.Errorf("out = %q, want leftover Liquid syntax stripped", out)
	}
}

func TestEraseVariablesFixesAssetURLs(t *testing.T) {
	p := NewProcessor(testSite())
	in := `<link href="` + ghPagesStyleExpr + `"><link href="` + ghPagesCustomExpr + `">`
	out := p.EraseVariables(in, nil)

	if !strings.Contains(out, `"/assets/css/style.css"`) {
		t.Errorf("style.css URL not fixed: %q", out)
	}
	if !strings.Contains(out, `"/assets/css/custom.css"`) {
		t.Errorf("custom.css URL not fixed: %q", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	root := t.TempDir()
	writeSiteFile(t, root, "_layouts/post.html", "<article>{{ content }}</article>")
	p := NewProcessor(testSite())

	out, err := p.RenderMarkdown("---\nlayout: post\ntitle: Note\n---\n## Heading\n\nSome *text*.",
		filepath.Join(root, "note.md"))
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "<article>") {
		t.Errorf("layout not applied: %q", out)
	}
	if !strings.Contains(out, "Heading</h2>") {
		t.Errorf("heading not rendered: %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Errorf("emphasis not rendered: %q", out)
	}
}

func TestRenderMarkdownWithoutLayout(t *testing.T) {
	p := NewProcessor(testSite())
	out, err := p.RenderMarkdown("plain **markdown**", "note.md")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "<strong>markdown</strong>") {
		t.Errorf("markdown not rendered: %q", out)
	}
}

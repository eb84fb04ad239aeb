package sitepreview

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Page describes one top-level page discovered in the site root. Used
// for the startup listing and the preview sitemap; nothing here is
// persisted.
type Page struct {
	Name    string // filename without extension
	Title   string // front-matter title, else derived from the filename
	Link    string // request path, "/" for the index page
	LastMod string // file modification date, YYYY-MM-DD
}

// DiscoverPages scans the top level of the site root for .html and .md
// pages. Underscore-prefixed entries (layouts, includes, config) and
// hidden files are skipped. The index page sorts first, the rest
// alphabetically.
func (a *App) DiscoverPages() []Page {
	entries, err := os.ReadDir(a.Config.Root)
	if err != nil {
		a.Echo.Logger.Warnf("sitepreview: list pages: %v", err)
		return nil
	}

	var pages []Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if ext != ".html" && ext != ".md" {
			continue
		}
		base := strings.TrimSuffix(name, ext)

		p := Page{
			Name:  base,
			Title: a.pageTitle(filepath.Join(a.Config.Root, name), base),
			Link:  "/" + base,
		}
		if base == "index" {
			p.Link = "/"
		}
		if info, err := entry.Info(); err == nil {
			p.LastMod = info.ModTime().Format("2006-01-02")
		}
		pages = append(pages, p)
	}

	sort.Slice(pages, func(i, j int) bool {
		if (pages[i].Name == "index") != (pages[j].Name == "index") {
			return pages[i].Name == "index"
		}
		return pages[i].Name < pages[j].Name
	})
	return pages
}

// pageTitle reads the page's front-matter title, falling back to a
// title-cased rendition of the filename.
func (a *App) pageTitle(path, base string) string {
	raw, err := os.ReadFile(path)
	if err == nil {
		if fm, _ := SplitFrontMatter(string(raw)); fm["title"] != "" {
			return fm["title"]
		}
	}
	return TitleFromFilename(base)
}

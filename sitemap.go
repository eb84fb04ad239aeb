package sitepreview

import (
	"encoding/xml"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap serves a sitemap of the discovered top-level pages, a
// preview convenience for sites whose build would normally generate
// one. A sitemap.xml present in the site root wins over the generated
// listing.
func (a *App) handleSitemap(c echo.Context) error {
	if own := filepath.Join(a.Config.Root, "sitemap.xml"); isFile(own) {
		return c.File(own)
	}
	base := strings.TrimSuffix(a.Config.URL, "/")
	var urls []sitemapURL
	for _, p := range a.DiscoverPages() {
		urls = append(urls, sitemapURL{
			Loc:     base + p.Link,
			LastMod: p.LastMod,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

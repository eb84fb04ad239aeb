package sitepreview

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/*", a.handlePage)
}

// handlePage is the catch-all GET handler. It normalizes the request
// path, then serves either a processed page or the raw file. Processing
// failures never surface as HTTP errors: the handler logs and falls
// back to static delivery of the original file.
func (a *App) handlePage(c echo.Context) error {
	reqPath := normalizePath(c.Request().URL.Path)

	if body, ok := a.Cache.Get(reqPath); ok {
		return c.HTMLBlob(http.StatusOK, body)
	}

	filePath, err := a.resolve(reqPath)
	if err != nil {
		return echo.ErrNotFound
	}

	switch {
	case strings.HasSuffix(filePath, ".html") && isFile(filePath):
		return a.servePage(c, reqPath, filePath)
	case strings.HasSuffix(filePath, ".md") && isFile(filePath):
		return a.serveMarkdown(c, reqPath, filePath)
	case strings.HasSuffix(filePath, ".html"):
		// Pretty URL with no .html on disk: a markdown source may
		// still answer for it.
		if md := strings.TrimSuffix(filePath, ".html") + ".md"; isFile(md) {
			return a.serveMarkdown(c, reqPath, md)
		}
		return a.serveStatic(c, filePath)
	default:
		return a.serveStatic(c, filePath)
	}
}

// servePage serves a processed HTML page, falling back to the raw file
// bytes on any failure.
func (a *App) servePage(c echo.Context, reqPath, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		c.Logger().Errorf("sitepreview: read %s: %v", filePath, err)
		return a.serveStatic(c, filePath)
	}
	out, err := a.Processor.Render(string(raw), filePath)
	if err != nil {
		c.Logger().Errorf("sitepreview: process %s: %v", reqPath, err)
		return c.HTMLBlob(http.StatusOK, raw)
	}
	body := []byte(out)
	a.Cache.Put(reqPath, body)
	return c.HTMLBlob(http.StatusOK, body)
}

// serveMarkdown renders a markdown source through the layout pipeline,
// falling back to the raw file on any failure.
func (a *App) serveMarkdown(c echo.Context, reqPath, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		c.Logger().Errorf("sitepreview: read %s: %v", filePath, err)
		return a.serveStatic(c, filePath)
	}
	out, err := a.Processor.RenderMarkdown(string(raw), filePath)
	if err != nil {
		c.Logger().Errorf("sitepreview: process %s: %v", reqPath, err)
		return a.serveStatic(c, filePath)
	}
	body := []byte(out)
	a.Cache.Put(reqPath, body)
	return c.HTMLBlob(http.StatusOK, body)
}

// serveStatic hands the file to echo's static delivery. Missing files
// become 404s through the error handler.
func (a *App) serveStatic(c echo.Context, filePath string) error {
	return c.File(filePath)
}

// normalizePath applies the pretty-URL rules: the root resolves to the
// index page, and a path whose final segment carries no extension gets
// .html appended.
func normalizePath(p string) string {
	if p == "" || p == "/" {
		return "/index.html"
	}
	if !strings.HasSuffix(p, ".html") && !strings.HasSuffix(p, ".css") &&
		!strings.Contains(path.Base(p), ".") {
		return p + ".html"
	}
	return p
}

// resolve maps a request path onto the site root, rejecting anything
// that escapes it.
func (a *App) resolve(reqPath string) (string, error) {
	joined := filepath.Join(a.Config.Root, filepath.FromSlash(path.Clean("/"+reqPath)))
	root := filepath.Clean(a.Config.Root)
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", echo.ErrNotFound
	}
	return joined, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

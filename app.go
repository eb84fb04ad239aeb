// Package sitepreview is a local preview server for pre-built static
// sites. It serves a site directory over HTTP, emulating the small
// slice of Jekyll that exported pages depend on — front-matter
// key/value extraction, layout wrapping, and variable substitution —
// so a site renders without the real build toolchain. Any processing
// failure falls back to serving the raw file.
package sitepreview

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// App is the preview server. It wires together the page processor,
// the rendered-page cache, the file watcher, and the Echo instance.
type App struct {
	Config    Config
	Echo      *echo.Echo
	Processor *Processor
	Cache     *PageCache

	watcher      *Watcher
	openBrowser  func(url string) error
	customRoutes []func(*App)
}

// New creates a preview App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the processing pipeline, middleware, and routes,
// then runs the server until it is shut down. The browser launch and
// cache watcher start here as well.
func (a *App) Start() error {
	if err := a.bootstrap(); err != nil {
		return err
	}

	a.logPages()
	if a.Config.OpenBrowser {
		a.launchBrowser()
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// bootstrap performs everything Start does short of listening.
func (a *App) bootstrap() error {
	// The site's own _config.yml wins over built-in defaults.
	site, err := LoadSiteConfig(a.Config.Root)
	if err != nil {
		a.Echo.Logger.Warnf("%v", err)
	} else {
		a.Config.Site.merge(site)
	}

	// Best effort: a site without a stylesheet still previews, just unstyled.
	if err := EnsureStylesheet(a.Config.Root); err != nil {
		a.Echo.Logger.Warnf("%v", err)
	}

	a.Processor = NewProcessor(a.Config.Site)
	a.Cache = NewPageCache(a.Config.PageCacheTTL)

	if a.Config.Watch {
		w, err := NewWatcher(a.Config.Root, a.Cache, a.Echo.Logger)
		if err != nil {
			a.Echo.Logger.Warnf("sitepreview: file watcher disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// logPages prints the listen URL and the site's top-level pages so the
// terminal shows what is available to preview.
func (a *App) logPages() {
	a.Echo.Logger.Printf("sitepreview: serving %s at %s", a.Config.Root, a.Config.URL)
	for _, p := range a.DiscoverPages() {
		a.Echo.Logger.Printf("sitepreview:   %-24s %s%s", p.Title, a.Config.URL, p.Link)
	}
}

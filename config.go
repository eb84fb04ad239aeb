package sitepreview

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

// SiteConfig holds the site-wide values substituted into processed
// pages. Supplied once at startup and read-only afterwards.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Config holds all configuration for a preview server.
type Config struct {
	Site SiteConfig // Title/description substituted into pages

	Root string // Site root directory (default ".")
	Addr string // Listen address (default ":8000")
	URL  string // Base URL, logged and opened in the browser (default "http://localhost:8000")

	OpenBrowser  bool          // Open a browser shortly after startup
	BrowserDelay time.Duration // Delay before opening (default 1s)
	PageCacheTTL time.Duration // Rendered page cache TTL (default 30s)
	Watch        bool          // Invalidate the cache when site files change
}

func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.Site.Title == "" {
		c.Site.Title = "My Site"
	}
	if c.BrowserDelay == 0 {
		c.BrowserDelay = time.Second
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 30 * time.Second
	}
}

// siteConfigFile is the Jekyll-convention config file read from the site root.
const siteConfigFile = "_config.yml"

// LoadSiteConfig reads _config.yml from the site root and returns the
// title and description declared there. A missing file is not an error:
// the zero SiteConfig is returned and built-in defaults apply.
func LoadSiteConfig(root string) (SiteConfig, error) {
	var sc SiteConfig
	raw, err := os.ReadFile(filepath.Join(root, siteConfigFile))
	if err != nil {
		if os.IsNotExist(err) {
			return sc, nil
		}
		return sc, fmt.Errorf("sitepreview: read %s: %w", siteConfigFile, err)
	}
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return SiteConfig{}, fmt.Errorf("sitepreview: parse %s: %w", siteConfigFile, err)
	}
	return sc, nil
}

// merge overlays non-empty values from other onto c.
func (c *SiteConfig) merge(other SiteConfig) {
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Description != "" {
		c.Description = other.Description
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithBrowserOpener replaces the function used to open the browser on
// startup. Useful in tests and headless environments.
func WithBrowserOpener(open func(url string) error) Option {
	return func(a *App) {
		a.openBrowser = open
	}
}

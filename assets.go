package sitepreview

import (
	"fmt"
	"os"
	"path/filepath"
)

// stylesheetPath is where the default stylesheet lands, relative to the
// site root. Pages built for the Cayman theme link it at this URL.
const stylesheetPath = "assets/css/style.css"

// EnsureStylesheet writes the embedded default stylesheet to
// assets/css/style.css under root unless a stylesheet already exists
// there. This is the only file the preview server ever writes.
func EnsureStylesheet(root string) error {
	path := filepath.Join(root, filepath.FromSlash(stylesheetPath))
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	css, err := EmbeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return fmt.Errorf("sitepreview: embedded stylesheet: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("sitepreview: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, css, 0o644); err != nil {
		return fmt.Errorf("sitepreview: write %s: %w", path, err)
	}
	return nil
}

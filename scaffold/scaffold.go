// Package scaffold provides the embedded starter site written by the
// sitepreview init command.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Site contains the starter site files: an index page, an example
// markdown page, a default layout, and a _config.yml.
//
//go:embed all:site
var Site embed.FS

// Generate writes the starter site into dir, creating it if needed.
// Existing files are never overwritten.
func Generate(dir string) error {
	return fs.WalkDir(Site, "site", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("site", path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("scaffold: %s already exists", target)
		}
		data, err := Site.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

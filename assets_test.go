package sitepreview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureStylesheetCreatesDefault(t *testing.T) {
	root := t.TempDir()

	if err := EnsureStylesheet(root); err != nil {
		t.Fatalf("EnsureStylesheet failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "assets", "css", "style.css"))
	if err != nil {
		t.Fatalf("stylesheet not written: %v", err)
	}
	if !strings.Contains(string(data), "page-header") {
		t.Errorf("unexpected stylesheet content: %q", data)
	}
}

func TestEnsureStylesheetKeepsExisting(t *testing.T) {
	root := t.TempDir()
	custom := "body { color: red; }"
	writeSiteFile(t, root, "assets/css/style.css", custom)

	if err := EnsureStylesheet(root); err != nil {
		t.Fatalf("EnsureStylesheet failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "assets", "css", "style.css"))
	if string(data) != custom {
		t.Errorf("existing stylesheet was overwritten: %q", data)
	}
}

package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWritesStarterSite(t *testing.T) {
	dir := t.TempDir()

	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, name := range []string{
		"index.html",
		"about.md",
		"_config.yml",
		filepath.Join("_layouts", "default.html"),
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}

	layout, err := os.ReadFile(filepath.Join(dir, "_layouts", "default.html"))
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if !strings.Contains(string(layout), "{{ content }}") {
		t.Errorf("layout missing content placeholder: %q", layout)
	}
}

func TestGenerateRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("mine"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Generate(dir); err == nil {
		t.Fatal("expected an error when a target file already exists")
	}

	data, _ := os.ReadFile(filepath.Join(dir, "index.html"))
	if string(data) != "mine" {
		t.Errorf("existing file was overwritten: %q", data)
	}
}

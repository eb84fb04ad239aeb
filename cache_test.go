package sitepreview

import (
	"testing"
	"time"
)

func TestPageCachePutGet(t *testing.T) {
	cache := NewPageCache(time.Minute)

	if _, ok := cache.Get("/index.html"); ok {
		t.Fatal("expected empty cache to miss")
	}

	cache.Put("/index.html", []byte("<html>hi</html>"))
	body, ok := cache.Get("/index.html")
	if !ok {
		t.Fatal("expected cached page to hit")
	}
	if string(body) != "<html>hi</html>" {
		t.Errorf("body = %q, want cached bytes", body)
	}
}

func TestPageCacheExpires(t *testing.T) {
	cache := NewPageCache(50 * time.Millisecond)
	cache.Put("/page.html", []byte("x"))

	time.Sleep(80 * time.Millisecond)
	if _, ok := cache.Get("/page.html"); ok {
		t.Fatal("expected entry to expire after the TTL")
	}
}

func TestPageCacheInvalidate(t *testing.T) {
	cache := NewPageCache(time.Minute)
	cache.Put("/a.html", []byte("a"))
	cache.Put("/b.html", []byte("b"))

	cache.Invalidate()

	if _, ok := cache.Get("/a.html"); ok {
		t.Fatal("expected invalidated cache to miss")
	}
	if _, ok := cache.Get("/b.html"); ok {
		t.Fatal("expected invalidated cache to miss")
	}
}

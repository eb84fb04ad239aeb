package sitepreview

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of rendered page bytes keyed by
// request path, with a TTL. It only ever holds the final plain-HTML
// output; front matter and other intermediate state are discarded as
// soon as a page is processed.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	ttl   time.Duration
}

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates a PageCache with the given TTL.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		pages: make(map[string]cachedPage),
		ttl:   ttl,
	}
}

// Get returns the cached rendering for path, if present and fresh.
func (c *PageCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[path]
	if !ok || time.Since(p.fetched) >= c.ttl {
		return nil, false
	}
	return p.body, true
}

// Put stores the rendering for path.
func (c *PageCache) Put(path string, body []byte) {
	c.mu.Lock()
	c.pages[path] = cachedPage{body: body, fetched: time.Now()}
	c.mu.Unlock()
}

// Invalidate clears the cache so the next request re-processes its page.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]cachedPage)
	c.mu.Unlock()
}

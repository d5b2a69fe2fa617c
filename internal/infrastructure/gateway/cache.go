package gateway

import (
	"sync"
	"time"
)

type cacheEntry struct {
	docs      []map[string]interface{}
	timestamp time.Time
}

// ListCache es un caché TTL en memoria delante de los listados del almacén
// externo, para no repetir el viaje de red en cada filtrado del cliente.
type ListCache struct {
	cache map[string]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewListCache crea un caché de listados con el TTL indicado.
func NewListCache(ttl time.Duration) *ListCache {
	c := &ListCache{
		cache: make(map[string]*cacheEntry),
		ttl:   ttl,
	}

	go c.cleanupLoop()

	return c
}

// Get devuelve el listado cacheado de una colección si no ha expirado.
func (c *ListCache) Get(collection string) ([]map[string]interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[collection]
	if !exists {
		return nil, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.docs, true
}

// Set guarda el listado de una colección.
func (c *ListCache) Set(collection string, docs []map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[collection] = &cacheEntry{docs: docs, timestamp: time.Now()}
}

// Invalidate descarta el listado cacheado de una colección. Se llama tras
// cualquier escritura para que la siguiente lectura vea el estado real.
func (c *ListCache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, collection)
}

// Clear vacía el caché completo.
func (c *ListCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*cacheEntry)
}

func (c *ListCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *ListCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.cache, key)
		}
	}
}

package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Prashgeek/TenWeather/internal/location"
)

var (
	// ErrNotFound is returned when no fresh cached entry is available.
	ErrNotFound = errors.New("no cached entry")
)

// searchEntry is one cached ranked result set for a search term.
type searchEntry struct {
	results  []location.Candidate
	storedAt time.Time
}

// MemoryCache is a concurrency-safe in-memory cache with two roles: ranked
// search results keyed by term (autocomplete hits the same prefixes over
// and over), and the last good reverse-lookup candidate pool so reverse
// lookups survive transient provider failures.
type MemoryCache struct {
	mu sync.RWMutex

	searches map[string]searchEntry
	order    []string // term insertion order, for count-based eviction

	pool   []location.Candidate
	poolAt time.Time

	// retention configuration
	maxEntries int           // max number of cached search terms (0 = unlimited)
	maxAge     time.Duration // max age of any cached entry (0 = unlimited)
}

// NewMemoryCache creates a new MemoryCache with optional limits.
func NewMemoryCache(maxEntries int, maxAge time.Duration) *MemoryCache {
	return &MemoryCache{
		searches:   make(map[string]searchEntry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// SaveSearch stores a ranked result set for a term and enforces retention.
func (c *MemoryCache) SaveSearch(term string, results []location.Candidate) {
	key := normalizeTerm(term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.searches[key]; !exists {
		c.order = append(c.order, key)
	}
	c.searches[key] = searchEntry{results: results, storedAt: time.Now()}

	// Enforce retention by count, oldest term out first.
	for c.maxEntries > 0 && len(c.order) > c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.searches, oldest)
	}
}

// GetSearch returns the cached result set for a term, or ErrNotFound on a
// miss or an expired entry.
func (c *MemoryCache) GetSearch(term string) ([]location.Candidate, error) {
	key := normalizeTerm(term)

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.searches[key]
	if !ok {
		return nil, ErrNotFound
	}
	if c.expired(entry.storedAt) {
		return nil, ErrNotFound
	}
	return entry.results, nil
}

// SavePool stores the reverse-lookup candidate pool.
func (c *MemoryCache) SavePool(pool []location.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pool = pool
	c.poolAt = time.Now()
}

// GetPool returns the cached candidate pool, or ErrNotFound when no pool
// has been stored yet or the stored one has aged out.
func (c *MemoryCache) GetPool() ([]location.Candidate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.pool) == 0 || c.expired(c.poolAt) {
		return nil, ErrNotFound
	}
	return c.pool, nil
}

func (c *MemoryCache) expired(storedAt time.Time) bool {
	return c.maxAge > 0 && time.Since(storedAt) > c.maxAge
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

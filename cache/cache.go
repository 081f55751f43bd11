package cache

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

// CachedProvider wraps a Provider and keeps successful city lookups in memory.
// Forecasts always go to the wrapped provider.
type CachedProvider struct {
	provider       datasource.Provider
	cache          map[string]cacheEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int

	now func() time.Time
}

// cacheEntry represents a resolved location with the time it was stored
type cacheEntry struct {
	Location  models.Location
	Timestamp time.Time
}

// NewCachedProvider creates a new geocode cache around a provider
func NewCachedProvider(provider datasource.Provider, cacheDuration time.Duration) *CachedProvider {
	return &CachedProvider{
		provider:      provider,
		cache:         make(map[string]cacheEntry),
		cacheDuration: cacheDuration,
		now:           time.Now,
	}
}

// Name returns the name of the underlying provider with a [Cached] suffix
func (c *CachedProvider) Name() string {
	return c.provider.Name() + " [Cached]"
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Geocode resolves a city, using the cache when a fresh entry exists.
// Failed lookups are never stored.
func (c *CachedProvider) Geocode(ctx context.Context, city string) (models.Location, error) {
	key := cacheKey(city)
	if key == "" {
		return c.provider.Geocode(ctx, city)
	}

	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	if found {
		age := c.now().Sub(entry.Timestamp)
		if age < c.cacheDuration {
			c.mutex.Lock()
			c.cacheHitCount++
			c.mutex.Unlock()

			log.Printf("Geocode cache HIT for %q from %s (age: %s)", city, c.provider.Name(), age.Round(time.Second))
			return entry.Location, nil
		}
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	log.Printf("Geocode cache MISS for %q from %s", city, c.provider.Name())

	loc, err := c.provider.Geocode(ctx, city)
	if err != nil {
		return models.Location{}, err
	}

	c.mutex.Lock()
	c.cache[key] = cacheEntry{
		Location:  loc,
		Timestamp: c.now(),
	}
	c.mutex.Unlock()

	return loc, nil
}

// Forecast is passed straight through; forecasts are not cached
func (c *CachedProvider) Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error) {
	return c.provider.Forecast(ctx, lat, lng)
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedProvider) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

var _ datasource.Provider = (*CachedProvider)(nil)

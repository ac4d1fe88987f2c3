package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prashgeek/TenWeather/internal/location"
)

func TestMemoryCache_SearchRoundTrip(t *testing.T) {
	cache := NewMemoryCache(10, time.Hour)

	results := []location.Candidate{
		{Name: "Goa", CountryCode: "IN", Latitude: 15.49, Longitude: 73.82},
	}
	cache.SaveSearch("goa", results)

	got, err := cache.GetSearch("goa")
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestMemoryCache_TermNormalization(t *testing.T) {
	cache := NewMemoryCache(10, time.Hour)

	cache.SaveSearch("  Goa ", []location.Candidate{{Name: "Goa"}})

	got, err := cache.GetSearch("goa")
	require.NoError(t, err)
	assert.Equal(t, "Goa", got[0].Name)
}

func TestMemoryCache_MissReturnsErrNotFound(t *testing.T) {
	cache := NewMemoryCache(10, time.Hour)

	_, err := cache.GetSearch("unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_EvictsOldestBeyondMaxEntries(t *testing.T) {
	cache := NewMemoryCache(2, time.Hour)

	cache.SaveSearch("first", []location.Candidate{{Name: "First"}})
	cache.SaveSearch("second", []location.Candidate{{Name: "Second"}})
	cache.SaveSearch("third", []location.Candidate{{Name: "Third"}})

	_, err := cache.GetSearch("first")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = cache.GetSearch("second")
	assert.NoError(t, err)
	_, err = cache.GetSearch("third")
	assert.NoError(t, err)
}

func TestMemoryCache_ExpiredEntriesAreMisses(t *testing.T) {
	cache := NewMemoryCache(10, time.Nanosecond)

	cache.SaveSearch("goa", []location.Candidate{{Name: "Goa"}})
	time.Sleep(2 * time.Millisecond)

	_, err := cache.GetSearch("goa")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_PoolRoundTrip(t *testing.T) {
	cache := NewMemoryCache(10, time.Hour)

	_, err := cache.GetPool()
	assert.ErrorIs(t, err, ErrNotFound)

	pool := []location.Candidate{
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	}
	cache.SavePool(pool)

	got, err := cache.GetPool()
	require.NoError(t, err)
	assert.Equal(t, pool, got)
}

func TestMemoryCache_StalePoolIsAMiss(t *testing.T) {
	cache := NewMemoryCache(10, time.Nanosecond)

	cache.SavePool([]location.Candidate{{Name: "Mumbai"}})
	time.Sleep(2 * time.Millisecond)

	_, err := cache.GetPool()
	assert.ErrorIs(t, err, ErrNotFound)
}

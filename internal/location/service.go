package location

import (
	"context"
	"log"
	"sync"

	"github.com/Prashgeek/TenWeather/internal/common"
)

const (
	maxSearchResults = 10
	maxSuggestions   = 5
	restrictedCount  = 5

	// poolQuery is the fixed broad query used to build the reverse-lookup
	// candidate pool; the provider exposes no native reverse endpoint, so
	// reverse lookups are best-effort nearest-match over this pool.
	poolQuery = "a"
	poolCount = 10

	fallbackName = "Your Location"
)

// Service composes the geocoding client, ranking, and the cache into the
// three operations the HTTP layer exposes: Search, Suggestions, Reverse.
// All provider failures are absorbed here; none of the operations returns
// an error.
type Service struct {
	geocoder Geocoder
	cache    Cache
	priority Priority
}

// NewService creates a new Service. cache may be nil to disable caching.
func NewService(geocoder Geocoder, cache Cache, priority Priority) *Service {
	return &Service{
		geocoder: geocoder,
		cache:    cache,
		priority: priority,
	}
}

// Search returns the ranked candidate set for a free-text term; the first
// element is the best match. The general search always runs; a
// country-restricted search runs alongside it when the term plausibly
// refers to the priority country. The two calls fan out concurrently and
// are joined before merging, so output order never depends on arrival
// order. A term with no matches, or total provider failure, yields an
// empty slice.
func (s *Service) Search(ctx context.Context, term string) []Candidate {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(term); err == nil {
			return cached
		}
	}

	var (
		wg         sync.WaitGroup
		general    []Candidate
		restricted []Candidate
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := s.geocoder.Search(ctx, term, maxSearchResults)
		if err != nil {
			// Log and continue; the sibling call may still produce results.
			log.Printf("general geocoding failed for %q: %v", term, err)
			return
		}
		general = res
	}()

	if s.priority.LikelyMatch(term) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.geocoder.SearchCountry(ctx, term, s.priority.Code, restrictedCount)
			if err != nil {
				log.Printf("%s-restricted geocoding failed for %q: %v", s.priority.Code, term, err)
				return
			}
			restricted = res
		}()
	}

	wg.Wait()

	ranked := Rank(restricted, general, s.priority, maxSearchResults)
	if len(ranked) > 0 && s.cache != nil {
		s.cache.SaveSearch(term, ranked)
	}
	return ranked
}

// Suggestions returns up to five display-ready suggestions for interactive
// search-as-you-type.
func (s *Service) Suggestions(ctx context.Context, term string) []Suggestion {
	ranked := s.Search(ctx, term)
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	for _, c := range ranked {
		suggestions = append(suggestions, s.toSuggestion(c))
	}
	return suggestions
}

func (s *Service) toSuggestion(c Candidate) Suggestion {
	display := c.Name
	if c.Admin1 != "" {
		display += ", " + c.Admin1
	}
	if c.Country != "" {
		display += " (" + c.Country + ")"
	}

	priority := 0
	if c.CountryCode == s.priority.Code {
		priority = 1
	}

	return Suggestion{
		Name:      c.Name,
		Display:   display,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Country:   common.FirstNonEmpty(c.Country, c.CountryCode),
		Priority:  priority,
	}
}

// Reverse resolves a coordinate pair to the nearest known place from the
// candidate pool. It never fails: when no pool is available the result
// carries a generic placeholder name and the query coordinates.
func (s *Service) Reverse(ctx context.Context, lat, lon float64) ReverseLookup {
	pool := s.pool(ctx)

	nearest, ok := Nearest(lat, lon, pool)
	if !ok {
		log.Printf("reverse lookup has no candidate pool for (%v, %v); returning fallback", lat, lon)
		return ReverseLookup{
			Name:      fallbackName,
			Latitude:  lat,
			Longitude: lon,
		}
	}

	return ReverseLookup{
		Name:      nearest.Name,
		Admin1:    nearest.Admin1,
		Country:   common.FirstNonEmpty(nearest.Country, nearest.CountryCode),
		Latitude:  lat,
		Longitude: lon,
	}
}

// pool returns the reverse-lookup candidate pool, preferring the cached
// copy the scheduler keeps warm.
func (s *Service) pool(ctx context.Context) []Candidate {
	if s.cache != nil {
		if pool, err := s.cache.GetPool(); err == nil && len(pool) > 0 {
			return pool
		}
	}
	return s.RefreshPool(ctx)
}

// RefreshPool fetches a fresh candidate pool and caches it. It serves both
// cold reverse lookups and the periodic scheduler job.
func (s *Service) RefreshPool(ctx context.Context) []Candidate {
	pool, err := s.geocoder.Search(ctx, poolQuery, poolCount)
	if err != nil {
		log.Printf("reverse-lookup pool fetch failed: %v", err)
		return nil
	}
	if len(pool) > 0 && s.cache != nil {
		s.cache.SavePool(pool)
	}
	return pool
}

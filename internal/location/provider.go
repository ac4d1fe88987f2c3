package location

import "context"

// Geocoder abstracts the forward geocoding provider (e.g. Open-Meteo's
// geocoding API). Result ordering is provider-defined and opaque; ranking
// is this package's job.
type Geocoder interface {
	// Search performs an unrestricted forward search.
	Search(ctx context.Context, name string, count int) ([]Candidate, error)
	// SearchCountry restricts the search to a single country.
	SearchCountry(ctx context.Context, name, countryCode string, count int) ([]Candidate, error)
}

// Cache is the contract the in-memory store must satisfy. A miss is
// reported as an error; stale entries count as misses.
type Cache interface {
	SaveSearch(term string, results []Candidate)
	GetSearch(term string) ([]Candidate, error)
	SavePool(pool []Candidate)
	GetPool() ([]Candidate, error)
}

package location

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_DeduplicatesByCoordinates(t *testing.T) {
	p := IndiaPriority()

	restricted := []Candidate{
		{Name: "Goa (restricted)", CountryCode: "IN", Latitude: 15.49, Longitude: 73.82},
	}
	general := []Candidate{
		{Name: "Goa (general)", CountryCode: "IN", Latitude: 15.49, Longitude: 73.82},
		{Name: "Goa Velha", CountryCode: "IN", Latitude: 15.44, Longitude: 73.88},
	}

	out := Rank(restricted, general, p, 10)

	assert.Len(t, out, 2)
	// Restricted results are prepended, so they win dedup ties.
	assert.Equal(t, "Goa (restricted)", out[0].Name)

	seen := map[string]bool{}
	for _, c := range out {
		assert.False(t, seen[c.Key()], "duplicate coordinates in output")
		seen[c.Key()] = true
	}
}

func TestRank_PriorityCountryFirstStable(t *testing.T) {
	p := IndiaPriority()

	general := []Candidate{
		{Name: "Salem US", CountryCode: "US", Latitude: 44.94, Longitude: -123.03},
		{Name: "Salem IN", CountryCode: "IN", Latitude: 11.65, Longitude: 78.16},
		{Name: "Salem DE", CountryCode: "DE", Latitude: 47.76, Longitude: 9.27},
		{Name: "Salem TN", Country: "India", Latitude: 11.67, Longitude: 78.14},
	}

	out := Rank(nil, general, p, 10)

	assert.Equal(t, []string{"Salem IN", "Salem TN", "Salem US", "Salem DE"}, names(out))
}

func TestRank_CapsAtMax(t *testing.T) {
	p := IndiaPriority()

	var general []Candidate
	for i := 0; i < 15; i++ {
		general = append(general, Candidate{
			Name:      fmt.Sprintf("Place %d", i),
			Latitude:  float64(i),
			Longitude: float64(i),
		})
	}

	out := Rank(nil, general, p, 10)
	assert.Len(t, out, 10)
}

func TestRank_EmptyInputsYieldEmptyOutput(t *testing.T) {
	out := Rank(nil, nil, IndiaPriority(), 10)
	assert.Empty(t, out)
}

func TestRank_ExactCoordinateEqualityOnly(t *testing.T) {
	// Nearby but distinct coordinates must not collapse.
	general := []Candidate{
		{Name: "A", Latitude: 15.490001, Longitude: 73.82},
		{Name: "B", Latitude: 15.490002, Longitude: 73.82},
	}

	out := Rank(nil, general, IndiaPriority(), 10)
	assert.Len(t, out, 2)
}

func names(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

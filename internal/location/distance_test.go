package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{19.0760, 72.8777},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, HaversineKm(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	d1 := HaversineKm(19.0760, 72.8777, 28.7041, 77.1025)
	d2 := HaversineKm(28.7041, 77.1025, 19.0760, 72.8777)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	// Mumbai to Delhi.
	assert.InDelta(t, 1153.24, HaversineKm(19.0760, 72.8777, 28.7041, 77.1025), 0.5)
	// Mumbai to Pune.
	assert.InDelta(t, 120.15, HaversineKm(19.0760, 72.8777, 18.5204, 73.8567), 0.5)
}

func TestNearest_PicksClosestCandidate(t *testing.T) {
	pool := []Candidate{
		{Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025},
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Pune", Latitude: 18.5204, Longitude: 73.8567},
	}

	best, ok := Nearest(19.0, 72.9, pool)
	assert.True(t, ok)
	assert.Equal(t, "Mumbai", best.Name)
}

func TestNearest_FirstSeenWinsOnTie(t *testing.T) {
	// Two candidates at the same point are equidistant from any target.
	pool := []Candidate{
		{Name: "First", Latitude: 10, Longitude: 10},
		{Name: "Second", Latitude: 10, Longitude: 10},
	}

	best, ok := Nearest(11, 11, pool)
	assert.True(t, ok)
	assert.Equal(t, "First", best.Name)
}

func TestNearest_EmptyPool(t *testing.T) {
	_, ok := Nearest(19.0, 72.9, nil)
	assert.False(t, ok)
}

package location

import "strconv"

// Candidate is a single place record returned by the geocoding provider.
// Field names mirror the provider's JSON so results can be handed back to
// the UI unchanged.
type Candidate struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Key returns a canonical string key for the candidate's coordinates.
// Two candidates with identical provider-reported coordinates are treated
// as the same place; no rounding is applied.
func (c Candidate) Key() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ":" +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Suggestion is a display-ready projection of a Candidate used by the
// interactive search box.
type Suggestion struct {
	Name      string  `json:"name"`
	Display   string  `json:"display"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Priority  int     `json:"priority"`
}

// ReverseLookup is the outcome of resolving a coordinate pair to a named
// place. Latitude/Longitude always echo the query coordinates, not the
// matched candidate's own position.
type ReverseLookup struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

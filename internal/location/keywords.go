package location

import "strings"

// Priority describes the country whose candidates are ranked ahead of all
// others, plus the keyword table used to decide whether a search term
// plausibly refers to a place there.
type Priority struct {
	Code     string   // two-letter ISO code, e.g. "IN"
	Name     string   // full country name, e.g. "India"
	Keywords []string // known place names, all lower-case
}

// indiaKeywords lists common Indian city names. The table trades false
// positives (an extra provider call) for zero false negatives on these
// names.
var indiaKeywords = []string{
	"goa", "mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad",
	"pune", "ahmedabad", "surat", "jaipur", "lucknow", "kanpur", "nagpur",
	"indore", "thane", "bhopal", "visakhapatnam", "pimpri", "patna", "vadodara",
	"ludhiana", "agra", "nashik", "faridabad", "meerut", "rajkot", "kalyan",
	"vasai", "varanasi", "srinagar", "aurangabad", "dhanbad", "amritsar",
	"navi mumbai", "allahabad", "ranchi", "howrah", "coimbatore", "jabalpur",
	"gwalior", "vijayawada", "jodhpur", "madurai", "raipur", "kota", "chandigarh",
	"guwahati", "solapur", "hubli", "bareilly", "moradabad", "mysore", "tiruchirappalli",
	"tiruppur", "gurgaon", "aligarh", "jalandhar", "bhubaneswar", "salem",
	"warangal", "guntur", "bhiwandi", "saharanpur", "gorakhpur", "bikaner",
	"amravati", "noida", "jamshedpur", "bhilai", "cuttack", "firozabad",
	"kochi", "bhavnagar", "dehradun", "durgapur", "asansol", "nanded",
	"kolhapur", "ajmer", "gulbarga", "jamnagar", "ujjain", "loni", "siliguri",
	"jhansi", "ulhasnagar", "nellore", "jammu", "sangli", "islampur", "kadapa",
}

// IndiaPriority returns the default priority configuration.
func IndiaPriority() Priority {
	return Priority{
		Code:     "IN",
		Name:     "India",
		Keywords: indiaKeywords,
	}
}

// LikelyMatch reports whether the search term plausibly refers to a place
// in the priority country. Containment is checked in both directions so a
// partial query like "mum" matches "mumbai".
func (p Priority) LikelyMatch(term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return false
	}
	for _, kw := range p.Keywords {
		if strings.Contains(t, kw) || strings.Contains(kw, t) {
			return true
		}
	}
	return false
}

// Matches reports an exact country match for a candidate. Unlike
// LikelyMatch this is not a heuristic; it drives the ranking partition.
func (p Priority) Matches(c Candidate) bool {
	if p.Code != "" && c.CountryCode == p.Code {
		return true
	}
	return p.Name != "" && c.Country == p.Name
}

package location

// Rank merges country-restricted and general search results into the final
// ordered set. Restricted results come first so they win coordinate
// de-duplication ties, then candidates with an exact priority-country match
// are stably partitioned to the front, and the set is capped at max
// entries. A zero or negative max means unbounded.
func Rank(restricted, general []Candidate, p Priority, max int) []Candidate {
	merged := make([]Candidate, 0, len(restricted)+len(general))
	merged = append(merged, restricted...)
	merged = append(merged, general...)

	seen := make(map[string]struct{}, len(merged))
	prioritized := make([]Candidate, 0, len(merged))
	var rest []Candidate

	for _, c := range merged {
		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if p.Matches(c) {
			prioritized = append(prioritized, c)
		} else {
			rest = append(rest, c)
		}
	}

	out := append(prioritized, rest...)
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

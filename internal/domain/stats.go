package domain

import "sort"

// Stats is a character's aggregate stat block, or an item's stat delta.
// Keys that are absent count as zero.
type Stats map[string]int

// BaseStats returns the stat block every new character starts with
func BaseStats() Stats {
	return Stats{StatHP: DefaultHP, StatPow: DefaultPow}
}

// Clone returns an independent copy
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Add returns s + delta without modifying either operand
func (s Stats) Add(delta Stats) Stats {
	out := s.Clone()
	for k, v := range delta {
		out[k] += v
	}
	return out
}

// Sub returns s - delta without modifying either operand
func (s Stats) Sub(delta Stats) Stats {
	out := s.Clone()
	for k, v := range delta {
		out[k] -= v
	}
	return out
}

// Equal reports whether both blocks hold the same values, treating missing keys as zero
func (s Stats) Equal(other Stats) bool {
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if s[k] != v {
			return false
		}
	}
	return true
}

// Keys returns the stat names in sorted order
func (s Stats) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

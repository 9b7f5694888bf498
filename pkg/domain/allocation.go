package domain

// Allocation maps skill IDs to their current rank.
// Skills absent from the map hold rank 0; zero entries are never stored.
type Allocation map[string]int

// Rank returns the rank held by id (0 when unallocated).
func (a Allocation) Rank(id string) int {
	return a[id]
}

// Total returns the sum of all ranks.
func (a Allocation) Total() int {
	total := 0
	for _, r := range a {
		total += r
	}
	return total
}

// Clone returns a deep copy that shares nothing with a.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for id, r := range a {
		if r != 0 {
			out[id] = r
		}
	}
	return out
}

// Equal reports whether both allocations assign the same rank to every skill.
func (a Allocation) Equal(b Allocation) bool {
	for id, r := range a {
		if b.Rank(id) != r {
			return false
		}
	}
	for id, r := range b {
		if a.Rank(id) != r {
			return false
		}
	}
	return true
}

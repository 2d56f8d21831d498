package unfollow

import "slices"

// IDSet is a set of numeric account ids.
type IDSet map[int64]struct{}

// NewIDSet builds a set from ids, dropping duplicates.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids.
func (s IDSet) Len() int { return len(s) }

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NonFollowerIDs returns following − followers: the ids followed but not following back.
func NonFollowerIDs(following, followers IDSet) IDSet {
	out := make(IDSet)
	for id := range following {
		if !followers.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

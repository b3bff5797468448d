// Package seats walks a fixed ring of table seats.
package seats

// NotFound is the index FindFrom returns alongside false when nothing matches.
const NotFound = -1

// Advance returns (index + increment) mod len(seats). Negative increments walk
// backwards. An empty ring has no valid index, so Advance returns 0 for it.
func Advance[T any](seats []T, index, increment int) int {
	n := len(seats)
	if n == 0 {
		return 0
	}
	return ((index+increment)%n + n) % n
}

// FindFrom scans the ring from start inclusive, wrapping around, and returns the
// first index whose seat satisfies match. It tests each seat at most once and
// returns (NotFound, false) after a full lap without a match.
func FindFrom[T any](seats []T, match func(T) bool, start int) (int, bool) {
	n := len(seats)
	if n == 0 {
		return NotFound, false
	}
	current := Advance(seats, start, 0)
	for range n {
		if match(seats[current]) {
			return current, true
		}
		current = Advance(seats, current, 1)
	}
	return NotFound, false
}

// NextFrom is FindFrom starting one seat after ref, the usual "next player to
// the left" lookup. ref itself is tested last.
func NextFrom[T any](seats []T, match func(T) bool, ref int) (int, bool) {
	return FindFrom(seats, match, Advance(seats, ref, 1))
}

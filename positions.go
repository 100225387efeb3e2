package richedit

// Range is a half-open interval [Start, End) of document positions. Positions count
// every character of every block plus one separator position at the end of each block,
// in document order (table cells row by row).
type Range struct {
	Start int
	End   int
}

// CmpPos compares two positions and returns -1 if a is before b, 0 if they are equal,
// and 1 if a is after b. It is used as the comparison function of the link index.
func CmpPos(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Len returns the number of positions in the range, 0 for an empty or inverted range.
func (r Range) Len() int {
	return max(0, r.End-r.Start)
}

// IsEmpty returns true if the range contains no position.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains returns true if pos lies within the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// Overlapping returns true if the two ranges share at least one position.
// r1.Overlapping(r2) and r2.Overlapping(r1) are equivalent.
func (r1 Range) Overlapping(r2 Range) bool {
	return r1.Start < r2.End && r2.Start < r1.End
}

// MaybeSwap returns the range with start and end exchanged if the end is before the start,
// and the unchanged range otherwise.
func (r Range) MaybeSwap() Range {
	if r.End < r.Start {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Sanitize computes a range that lies strictly within [0, last]. This can be used
// when ranges come from user input. Sanitize calls MaybeSwap.
func (r Range) Sanitize(last int) Range {
	s := r.MaybeSwap()
	s.Start = min(max(s.Start, 0), last)
	s.End = min(max(s.End, 0), last)
	return s
}

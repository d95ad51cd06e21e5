package vector

// ReserveHint asks a constructor to pre-allocate capacity without
// constructing elements. It is distinct from a plain int so that
// NewReserved cannot be confused with NewSize.
type ReserveHint struct {
	size int
}

// Reserve returns a hint for n slots of capacity.
func Reserve(n int) ReserveHint {
	return ReserveHint{size: n}
}

// Size returns the requested capacity.
func (h ReserveHint) Size() int {
	return h.size
}

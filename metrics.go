package vector

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Reallocations returns how many times the vector replaced its buffer.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      v.capacity,
		Free:          v.capacity - v.size,
		Reallocations: v.reallocs,
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Elements in use
	Capacity      int     // Allocated slots
	Free          int     // Slots available before the next reallocation
	Reallocations int     // Buffer replacements so far
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}

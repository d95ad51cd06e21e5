package vector

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks checker reports value copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a single contiguous allocation of T, or nothing.
// It does not remember how many elements it was created with; the owner
// tracks that. A Buffer must not be copied by value: use Take or MoveTo to
// transfer it.
type Buffer[T any] struct {
	_    noCopy
	data []T
}

// NewBuffer allocates a buffer of n zero-valued elements.
// If n <= 0 the buffer is empty and nothing is allocated.
func NewBuffer[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	if n > 0 {
		b.data = make([]T, n)
	}
	return b
}

// AdoptBuffer takes ownership of raw without allocating. The caller must not
// use raw afterwards, and raw must not be owned by another Buffer.
func AdoptBuffer[T any](raw []T) *Buffer[T] {
	b := &Buffer[T]{}
	if len(raw) > 0 {
		b.data = raw
	}
	return b
}

// Take moves the allocation into a new Buffer and leaves b empty.
func (b *Buffer[T]) Take() *Buffer[T] {
	nb := &Buffer[T]{data: b.data}
	b.data = nil
	return nb
}

// MoveTo transfers b's allocation to dst, dropping whatever dst owned.
// b is left empty. Moving a buffer onto itself keeps its allocation.
func (b *Buffer[T]) MoveTo(dst *Buffer[T]) {
	if b == dst {
		return
	}
	dst.data = b.data
	b.data = nil
}

// Release hands the allocation to the caller and leaves b empty.
// This is a transfer, not a borrow.
func (b *Buffer[T]) Release() []T {
	raw := b.data
	b.data = nil
	return raw
}

// Get returns the element at i. Bounds are the owner's responsibility.
func (b *Buffer[T]) Get(i int) T {
	return b.data[i]
}

// Set stores v at i. Bounds are the owner's responsibility.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Ptr returns a pointer to the element at i, valid until the allocation is
// moved, released or freed.
func (b *Buffer[T]) Ptr(i int) *T {
	return &b.data[i]
}

// Data returns the whole allocation without transferring ownership.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Valid reports whether b owns a non-empty allocation.
func (b *Buffer[T]) Valid() bool {
	return b.data != nil
}

// Swap exchanges allocations with other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Free drops the allocation. Freeing an empty buffer is a no-op.
func (b *Buffer[T]) Free() {
	b.data = nil
}

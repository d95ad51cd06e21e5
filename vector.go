package vector

import "fmt"

// Vector is a growable contiguous sequence of T backed by a single Buffer.
//
// Size and capacity are tracked separately. Elements in [0, Len()) are valid;
// slots in [Len(), Cap()) hold leftover values and are never exposed except
// after Resize re-initializes them. The zero Vector is empty and ready to use.
// A Vector is not safe for concurrent use and must not be copied by value;
// use Clone or Move.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	capacity int
	zero     func() T
	reallocs int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero-valued elements with capacity n.
func NewSize[T any](n int) *Vector[T] {
	return NewSizeFunc[T](n, nil)
}

// NewSizeFunc returns a vector of n elements produced by fn, which also
// becomes the default factory used by Resize. A nil fn means the zero value.
func NewSizeFunc[T any](n int, fn func() T) *Vector[T] {
	checkSize(n)
	v := &Vector[T]{zero: fn}
	nb := NewBuffer[T](n)
	v.fillDefault(nb.data)
	v.replace(nb, n)
	v.size = n
	return v
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) *Vector[T] {
	checkSize(n)
	v := &Vector[T]{}
	nb := NewBuffer[T](n)
	for i := range nb.data {
		nb.data[i] = value
	}
	v.replace(nb, n)
	v.size = n
	return v
}

// Of returns a vector holding a copy of elems, in order, with capacity
// len(elems). The caller's slice is not retained.
func Of[T any](elems ...T) *Vector[T] {
	v := &Vector[T]{}
	nb := NewBuffer[T](len(elems))
	copy(nb.data, elems)
	v.replace(nb, len(elems))
	v.size = len(elems)
	return v
}

// NewReserved returns an empty vector with capacity for hint.Size()
// elements. No elements are constructed.
func NewReserved[T any](hint ReserveHint) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(hint.Size())
	return v
}

// Clone returns a deep copy of the first Len() elements in a new buffer of
// capacity Len(). Elements are copied by assignment, so pointers inside T
// are shared.
func (v *Vector[T]) Clone() *Vector[T] {
	c := Of(v.Slice()...)
	c.zero = v.zero
	return c
}

// Assign replaces v's contents with a copy of other's. The copy is built
// before v is touched. Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
	tmp.buf.Free()
	if v.buf.Valid() {
		v.reallocs++
	}
}

// Move returns a new vector owning v's buffer. v is left empty with
// capacity 0.
func (v *Vector[T]) Move() *Vector[T] {
	nv := &Vector[T]{zero: v.zero}
	nv.Swap(v)
	return nv
}

// MoveFrom drops v's buffer and takes over other's. other is left empty
// with capacity 0. Moving a vector from itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf.Free()
	v.size, v.capacity = 0, 0
	v.Swap(other)
}

// SetDefault sets the factory producing the value of slots newly exposed by
// Resize. A nil fn restores the zero value of T.
func (v *Vector[T]) SetDefault(fn func() T) {
	v.zero = fn
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the current buffer holds without
// reallocating.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns the element at i without a bounds check against Len().
// i must be in [0, Len()).
func (v *Vector[T]) Get(i int) T {
	return v.buf.Get(i)
}

// Set stores x at i without a bounds check against Len().
// i must be in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	v.buf.Set(i, x)
}

// Ptr returns a pointer to the element at i without a bounds check against
// Len(). The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ptr(i int) *T {
	return v.buf.Ptr(i)
}

// At returns the element at i, or a *RangeError matching ErrOutOfRange when
// i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.rangeCheck(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf.Get(i), nil
}

// Ref is the checked form of Ptr.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.rangeCheck(i); err != nil {
		return nil, err
	}
	return v.buf.Ptr(i), nil
}

// Clear sets the length to zero. Capacity and storage are retained.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the length to n. Growing within capacity re-initializes the
// exposed slots with the default value; growing past capacity reallocates to
// exactly n. Shrinking keeps the first n elements.
func (v *Vector[T]) Resize(n int) {
	checkSize(n)
	if n <= v.capacity {
		if n > v.size {
			v.fillDefault(v.buf.data[v.size:n])
		}
		v.size = n
		return
	}
	nb := NewBuffer[T](n)
	copy(nb.data, v.buf.data[:v.size])
	v.fillDefault(nb.data[v.size:n])
	v.replace(nb, n)
	v.size = n
}

// Reserve grows the capacity to at least n without changing the length.
// It is a no-op when n <= Cap().
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	nb := NewBuffer[T](n)
	copy(nb.data, v.buf.data[:min(n, v.size)])
	v.replace(nb, n)
}

// PushBack appends x, doubling the capacity (or allocating 1) when full.
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.capacity {
		v.recreate(nextCapacity(v.capacity), v.size, x)
		return
	}
	v.buf.data[v.size] = x
	v.size++
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	v.size--
}

// Insert places x at position pos in [0, Len()] and returns its position.
// Elements at and after pos move one slot right. Positions, views and
// pointers obtained before the call are invalidated.
func (v *Vector[T]) Insert(pos int, x T) int {
	if v.size == v.capacity {
		v.recreate(nextCapacity(v.capacity), pos, x)
		return pos
	}
	data := v.buf.data
	copy(data[pos+1:v.size+1], data[pos:v.size])
	data[pos] = x
	v.size++
	return pos
}

// Erase removes the element at pos in [0, Len()) and returns the position
// now holding the element that followed it (Len() if pos was last).
func (v *Vector[T]) Erase(pos int) int {
	data := v.buf.data
	copy(data[pos:v.size-1], data[pos+1:v.size])
	v.size--
	return pos
}

// Swap exchanges buffers, lengths and capacities with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns a view of [0, Len()). Appending to the view never writes
// into the vector's spare capacity. The view is invalidated like a position.
func (v *Vector[T]) Slice() []T {
	return v.buf.data[:v.size:v.size]
}

// String formats the elements in [0, Len()) like a slice, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

func (v *Vector[T]) rangeCheck(i int) error {
	if i < 0 || i >= v.size {
		return &RangeError{Index: i, Size: v.size}
	}
	return nil
}

// recreate moves the elements into a buffer of newCap with x inserted at
// pos. The vector is only modified once the new buffer is complete.
func (v *Vector[T]) recreate(newCap, pos int, x T) {
	nb := NewBuffer[T](newCap)
	old := v.buf.data
	copy(nb.data, old[:pos])
	nb.data[pos] = x
	copy(nb.data[pos+1:], old[pos:v.size])
	v.replace(nb, newCap)
	v.size++
}

// replace swaps in a fully built buffer and frees the old one.
func (v *Vector[T]) replace(nb *Buffer[T], capacity int) {
	if nb.Valid() {
		v.reallocs++
	}
	v.buf.Swap(nb)
	nb.Free()
	v.capacity = capacity
}

func (v *Vector[T]) fillDefault(s []T) {
	if v.zero == nil {
		clear(s)
		return
	}
	for i := range s {
		s[i] = v.zero()
	}
}

func nextCapacity(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return 2 * capacity
}

func checkSize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
}

// Package vector implements a growable contiguous sequence (dynamic array)
// on top of an exclusively owned heap buffer.
//
// # Overview
//
// Vector tracks its length and capacity by hand instead of relying on the
// builtin append. Capacity changes follow one rule: an empty vector grows to
// 1 slot, a full one doubles. This makes reallocation points exact and
// predictable:
//
//	v := vector.New[int]()
//	v.PushBack(1) // cap 1
//	v.PushBack(2) // cap 2
//	v.PushBack(3) // cap 4
//
// # Ownership
//
// Every allocation is held by a Buffer, which has a single owner at a time.
// Buffers are transferred with Take, MoveTo or Release and must not be copied
// by value (go vet reports copies). A Vector never allocates directly: each
// capacity change builds a new Buffer, migrates the elements into it and only
// then swaps it in. If the allocation panics, the vector is unchanged.
//
// # Access
//
// Get, Set and Ptr do not check the index against Len(). At and Ref do, and
// return an error matching ErrOutOfRange:
//
//	if _, err := v.At(10); errors.Is(err, vector.ErrOutOfRange) {
//		// handle
//	}
//
// # Positions and invalidation
//
// Insert and Erase take integer positions in [Begin(), End()]. Positions,
// pointers from Ptr/Ref and views from Slice are invalidated by any call
// that reallocates, inserts, erases or resizes.
//
// # Pre-allocation
//
// NewReserved(Reserve(n)) allocates n slots without constructing elements,
// while NewSize(n) constructs n zero values:
//
//	v := vector.NewReserved[string](vector.Reserve(64))
//	fmt.Println(v.Len(), v.Cap()) // 0 64
//
// # Thread Safety
//
// Vector and Buffer are not safe for concurrent use.
package vector

package vector

import (
	"errors"
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()

	// Capacity grows 1 -> 2 -> 4
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	fmt.Printf("%v len=%d cap=%d\n", v, v.Len(), v.Cap())

	v.Erase(v.Begin() + 1)
	fmt.Println(v)

	v.Insert(v.Begin()+1, 9)
	fmt.Println(v)

	// Output:
	// [1 2 3] len=3 cap=4
	// [1 3]
	// [1 9 3]
}

// ExampleVector_At demonstrates checked access
func ExampleVector_At() {
	v := Of("a", "b")

	if s, err := v.At(1); err == nil {
		fmt.Println("At(1):", s)
	}
	if _, err := v.At(2); errors.Is(err, ErrOutOfRange) {
		fmt.Println(err)
	}

	// Output:
	// At(1): b
	// vector: index 2 out of range [0:2)
}

// ExampleVector_Resize demonstrates growth with default values
func ExampleVector_Resize() {
	v := NewFilled(3, 7)
	v.Resize(5)
	fmt.Printf("%v cap=%d\n", v, v.Cap())

	v.SetDefault(func() int { return -1 })
	v.Resize(2)
	v.Resize(4)
	fmt.Printf("%v cap=%d\n", v, v.Cap())

	// Output:
	// [7 7 7 0 0] cap=5
	// [7 7 -1 -1] cap=5
}

// ExampleNewReserved demonstrates pre-allocation without elements
func ExampleNewReserved() {
	v := NewReserved[string](Reserve(10))
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())

	for i := 0; i < 10; i++ {
		v.PushBack(fmt.Sprint(i))
	}
	fmt.Printf("len=%d cap=%d reallocations=%d\n", v.Len(), v.Cap(), v.Reallocations())

	// Output:
	// len=0 cap=10
	// len=10 cap=10 reallocations=1
}

// ExampleVector_Move demonstrates ownership transfer between vectors
func ExampleVector_Move() {
	a := Of(1, 2, 3)
	b := a.Move()
	fmt.Printf("a=%v cap=%d\n", a, a.Cap())
	fmt.Printf("b=%v cap=%d\n", b, b.Cap())

	// Output:
	// a=[] cap=0
	// b=[1 2 3] cap=3
}

// ExampleBuffer_Release demonstrates handing a buffer's allocation to the caller
func ExampleBuffer_Release() {
	b := NewBuffer[int](3)
	b.Set(0, 42)

	raw := b.Release()
	fmt.Println(raw, b.Valid())

	// Output:
	// [42 0 0] false
}

// ExampleVectorMetrics demonstrates monitoring capacity usage
func ExampleVectorMetrics() {
	v := New[int]()
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}

	m := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size: %d\n", m.Size)
	fmt.Printf("  Capacity: %d\n", m.Capacity)
	fmt.Printf("  Free: %d\n", m.Free)
	fmt.Printf("  Reallocations: %d\n", m.Reallocations)
	fmt.Printf("  Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Metrics:
	//   Size: 5
	//   Capacity: 8
	//   Free: 3
	//   Reallocations: 4
	//   Utilization: 62.5%
}

// ExampleCompare demonstrates lexicographic ordering
func ExampleCompare() {
	a := Of(1, 2, 3)
	b := Of(1, 3)
	fmt.Println(Compare(a, b), Less(a, b), Equal(a, a.Clone()))

	// Output:
	// -1 true true
}

package vector

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := NewReserved[int](Reserve(16))
	for _, x := range []int{1, 2, 3} {
		b.PushBack(x)
	}

	assert.True(t, Equal(a, b), "capacity does not affect equality")
	assert.False(t, Equal(a, Of(1, 2)))
	assert.False(t, Equal(a, Of(1, 2, 4)))
	assert.True(t, Equal(New[int](), Of[int]()))
}

func TestEqualFunc(t *testing.T) {
	a := Of("Go", "VECTOR")
	b := Of("go", "vector")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"shorter prefix", []int{1, 2}, []int{1, 2, 0}, -1},
		{"longer", []int{1, 2, 0}, []int{1, 2}, 1},
		{"first differs", []int{2}, []int{1, 9, 9}, 1},
		{"both empty", nil, nil, 0},
		{"empty first", nil, []int{0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Of(tt.a...), Of(tt.b...)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, tt.want < 0, Less(a, b))
			assert.Equal(t, tt.want <= 0, LessOrEqual(a, b))
			assert.Equal(t, tt.want > 0, Greater(a, b))
			assert.Equal(t, tt.want >= 0, GreaterOrEqual(a, b))
			assert.Equal(t, tt.want == 0, Equal(a, b))
		})
	}
}

func TestCompareFunc(t *testing.T) {
	byLen := func(x, y string) int { return len(x) - len(y) }
	assert.Negative(t, CompareFunc(Of("a", "bbb"), Of("z", "cccc"), byLen))
	assert.Zero(t, CompareFunc(Of("ab"), Of("cd"), byLen))
}

func TestOrderingNaN(t *testing.T) {
	nan := math.NaN()

	assert.Equal(t, -1, Compare(Of(nan), Of(1.0)))
	assert.True(t, Less(Of(nan), Of(math.Inf(-1))))
	assert.False(t, Greater(Of(nan), Of(1.0)))
	assert.Zero(t, Compare(Of(nan), Of(nan)))
	assert.False(t, Equal(Of(nan), Of(nan)), "Equal uses ==, which is false for NaN")
}

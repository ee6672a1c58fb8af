package rawbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocZeroValued(t *testing.T) {
	b := Alloc[int](4)
	require.NotNil(t, b)
	assert.Equal(t, 4, b.Len())
	for i := 0; i < b.Len(); i++ {
		assert.Equal(t, 0, b.Get(i))
	}
}

func TestAllocNonPositive(t *testing.T) {
	assert.Nil(t, Alloc[int](0))
	assert.Nil(t, Alloc[int](-1))
}

func TestNilBlockIsEmpty(t *testing.T) {
	var b *Block[string]
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Data(0))
	b.Free()
}

func TestGetSet(t *testing.T) {
	b := Alloc[string](2)
	b.Set(0, "a")
	b.Set(1, "b")
	assert.Equal(t, "a", b.Get(0))
	assert.Equal(t, "b", b.Get(1))
}

func TestTakeZeroesSlot(t *testing.T) {
	b := Alloc[[]int](1)
	b.Set(0, []int{1, 2, 3})
	v := b.Take(0)
	assert.Equal(t, []int{1, 2, 3}, v)
	assert.Nil(t, b.Get(0))
}

func TestReset(t *testing.T) {
	b := Alloc[int](4)
	for i := 0; i < 4; i++ {
		b.Set(i, i+1)
	}
	b.Reset(1, 3)
	assert.Equal(t, 1, b.Get(0))
	assert.Equal(t, 0, b.Get(1))
	assert.Equal(t, 0, b.Get(2))
	assert.Equal(t, 4, b.Get(3))
}

func TestDataView(t *testing.T) {
	b := Alloc[int](4)
	b.Set(0, 7)
	b.Set(1, 8)
	view := b.Data(2)
	require.Len(t, view, 2)
	assert.Equal(t, []int{7, 8}, view)

	view[0] = 9
	assert.Equal(t, 9, b.Get(0))
}

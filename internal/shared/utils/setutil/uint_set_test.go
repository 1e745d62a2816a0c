package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSet_KeepsFirstSeenOrder(t *testing.T) {
	s := FromSlice([]uint{5, 7, 5, 3, 7})

	assert.Equal(t, []uint{5, 7, 3}, s.ToSlice())
	assert.Equal(t, 3, s.Len())
}

func TestUintSet_AddReportsNew(t *testing.T) {
	s := NewUintSetWithCap(0)

	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1))
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
}

func TestUintSet_ToSliceIsCopy(t *testing.T) {
	s := FromSlice([]uint{1, 2})
	out := s.ToSlice()
	out[0] = 99

	assert.Equal(t, []uint{1, 2}, s.ToSlice())
}

func TestUintSet_Missing(t *testing.T) {
	s := FromSlice([]uint{1, 2, 3})

	assert.Equal(t, []uint{4, 6}, s.Missing([]uint{1, 4, 3, 6}))
	assert.Nil(t, s.Missing([]uint{2}))
}

func TestUintSet_Empty(t *testing.T) {
	s := NewUintSetWithCap(4)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []uint{}, s.ToSlice())
}

func TestPositive(t *testing.T) {
	assert.Equal(t, []uint{5, 7}, Positive([]uint{5, 0, 7, 5}))
	assert.Equal(t, []uint{9, 3}, Positive([]uint{9, 0, 3, 9}))
	assert.Equal(t, []uint{}, Positive(nil))
	assert.Equal(t, []uint{}, Positive([]uint{0, 0}))
}

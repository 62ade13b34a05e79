package nonempty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonesInsertWithoutVacancyPanics(t *testing.T) {
	z := newZones([]int{1, 2, 3})
	require.PanicsWithValue(t, "no vacated space available in front", func() { z.insertFront(0) })
	require.PanicsWithValue(t, "no vacated space available in the back", func() { z.insertBack(0) })
	assert.Equal(t, []int{1, 2, 3}, z.buf)
}

func TestZonesVacatedSlotsAreNotRead(t *testing.T) {
	z := newZones([]int{1, 2, 3})
	assert.Equal(t, 1, z.popFront())
	assert.Equal(t, 3, z.popBack())
	assert.True(t, z.vacated(0))
	assert.True(t, z.vacated(2))
	assert.False(t, z.vacated(1))
	assert.Equal(t, []int{0, 2, 0}, z.buf)
	assert.Panics(t, func() { z.take(0) })
	assert.Panics(t, func() { z.take(2) })
	assert.Panics(t, func() { z.put(1, 9) })
}

func TestZonesCompact(t *testing.T) {
	z := newZones([]int{1, 2, 3, 4, 5})
	z.popFront()
	z.insertFront(z.popFront())
	z.popBack()
	z.insertBack(z.popBack())
	assert.Equal(t, []int{2, 0, 3, 0, 4}, z.buf)
	assert.Equal(t, 3, z.compact())
	assert.Equal(t, []int{2, 3, 4, 0, 0}, z.buf)
}

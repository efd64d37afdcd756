package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/macroland/cell"
)

func TestCell(t *testing.T) {
	t.Run("get set replace take", func(t *testing.T) {
		c := cell.Of([]int{1, 2, 3})
		assert.Equal(t, []int{1, 2, 3}, c.Get())

		c.Set([]int{4, 5, 6})
		old := c.Replace([]int{7})
		assert.Equal(t, []int{4, 5, 6}, old)

		taken := c.Take()
		assert.Equal(t, []int{7}, taken)
		assert.Nil(t, c.Get())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "Cell{[1 2 3]}", cell.Of([3]int{1, 2, 3}).String())
	})
}

func TestOnceCell(t *testing.T) {
	t.Run("uninitialized cell can be set once", func(t *testing.T) {
		c := cell.NewOnce[string]()

		_, ok := c.Get()
		assert.False(t, ok)
		assert.Equal(t, "OnceCell(<uninit>)", c.String())

		require.NoError(t, c.Set("Meow!"))

		err := c.Set("Woof!")
		assert.ErrorIs(t, err, cell.ErrAlreadySet)

		v, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, "Meow!", v)
	})

	t.Run("get or init runs init only when empty", func(t *testing.T) {
		calls := 0
		init := func() int {
			calls++
			return 42
		}

		c := cell.NewOnce[int]()
		assert.Equal(t, 42, c.GetOrInit(init))
		assert.Equal(t, 42, c.GetOrInit(init))
		assert.Equal(t, 1, calls)

		preset := cell.OnceOf(7)
		assert.Equal(t, 7, preset.GetOrInit(init))
		assert.Equal(t, 1, calls)
		assert.Equal(t, "OnceCell(7)", preset.String())
	})
}

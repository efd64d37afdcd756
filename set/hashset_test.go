package set_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/macroland/set"
)

func TestHash_New(t *testing.T) {
	s := set.New[uint]()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())

	assert.True(t, s.Insert(10))
	assert.Equal(t, []uint{10}, s.Items())
}

func TestHash_Of(t *testing.T) {
	t.Run("duplicate literal yields a single entry", func(t *testing.T) {
		s := set.Of("v", "v")
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Has("v"))
	})

	t.Run("holds every distinct value", func(t *testing.T) {
		s := set.Of(200, 300, 400, 300)

		items := s.Items()
		sort.Ints(items)
		assert.Equal(t, []int{200, 300, 400}, items)
		assert.Equal(t, "{200 300 400}", s.String())
	})
}

func TestHash_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.Of("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.Of("foo", "bar", "baz", "123")

		s.Remove("foo")

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "bar", "baz"}, items)

		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove non existing item", func(t *testing.T) {
		s := set.Of("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestHash_InsertSet(t *testing.T) {
	s1 := set.Of(3)
	s2 := set.Of(9)

	assert.True(t, s1.InsertSet(s2))
	assert.False(t, s1.InsertSet(s2))
	assert.Equal(t, 2, s1.Len())
	assert.Equal(t, 1, s2.Len())

	s1.Clear()
	assert.Equal(t, 0, s1.Len())
	assert.False(t, s1.Has(3))
}

package set

import (
	"hash"
	"slices"
	"testing"

	"github.com/amp-labs/pokedeck/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constHash sends every value to the same key.
func constHash(_ hashing.Hashable) (string, error) {
	return "same", nil
}

type card struct {
	name  string
	level int
}

func (c card) UpdateHash(h hash.Hash) error {
	return hashing.Fields(h, hashing.HashableString(c.name), hashing.HashableInt(c.level))
}

func (c card) Equals(other card) bool {
	return c.name == other.name && c.level == other.level
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	t.Run("add reports growth", func(t *testing.T) {
		t.Parallel()

		s := New[card](hashing.Xxh3)

		for _, tc := range []struct {
			c     card
			added bool
		}{
			{card{"Bulbasaur", 10}, true},
			{card{"Bulbasaur", 10}, false},
			{card{"Bulbasaur", 11}, true},
			{card{"Abra", 3}, true},
		} {
			added, err := s.Add(tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.added, added, tc.c)
		}

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []card{{"Bulbasaur", 10}, {"Bulbasaur", 11}, {"Abra", 3}}, s.Entries())
		assert.Equal(t, s.Entries(), slices.Collect(s.All()))
	})

	t.Run("contains", func(t *testing.T) {
		t.Parallel()

		s := New[hashing.HashableString](hashing.Sha256)

		_, err := s.Add("foo")
		require.NoError(t, err)

		ok, err := s.Contains("foo")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Contains("bar")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entries are a copy", func(t *testing.T) {
		t.Parallel()

		s := New[card](hashing.Xxh3)
		_, err := s.Add(card{"Mew", 1})
		require.NoError(t, err)

		s.Entries()[0] = card{"Mewtwo", 70}

		assert.Equal(t, []card{{"Mew", 1}}, s.Entries())
	})

	t.Run("collision", func(t *testing.T) {
		t.Parallel()

		s := New[hashing.HashableString](constHash)

		_, err := s.Add("foo")
		require.NoError(t, err)

		added, err := s.Add("bar")
		require.ErrorIs(t, err, ErrHashCollision)
		assert.False(t, added)

		_, err = s.Contains("bar")
		require.ErrorIs(t, err, ErrHashCollision)
		assert.Equal(t, 1, s.Len())
	})
}

func TestNames(t *testing.T) {
	t.Parallel()

	n := NewNames(hashing.Xxh3)

	for _, name := range []string{"Porygon10", "Abra", "Porygon2", "Abra"} {
		_, err := n.Add(name)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, n.Len())
	assert.Equal(t, []string{"Porygon10", "Abra", "Porygon2"}, n.Entries())
	assert.Equal(t, []string{"Abra", "Porygon10", "Porygon2"}, n.Sorted())
	assert.Equal(t, []string{"Abra", "Porygon2", "Porygon10"}, n.Natural())

	ok, err := n.Contains("Porygon2")
	require.NoError(t, err)
	assert.True(t, ok)
}

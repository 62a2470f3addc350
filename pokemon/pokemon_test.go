package pokemon

import (
	"crypto/sha256"
	"testing"

	"github.com/amp-labs/pokedeck/compare"
	perrors "github.com/amp-labs/pokedeck/errors"
	"github.com/amp-labs/pokedeck/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// starterCollection is the unsorted six card fixture used throughout.
func starterCollection() []Pokemon {
	return []Pokemon{
		New("Bulbasaur", 10, WithType(Grass)),
		New("Bulbasaur", 10, WithType(Grass)),
		New("Bulbasaur", 11, WithType(Grass)),
		New("Charmander", 9, WithType(Fire)),
		New("Squirtle", 10, WithType(Water)),
		New("Pikachu", 10, WithType(Grass)),
	}
}

func sortedStarters() []Pokemon {
	c := starterCollection()
	Sort(c)

	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	p := New("Bulbasaur", 10, WithType(Grass))

	assert.Equal(t, "Bulbasaur", p.Name)
	assert.Equal(t, 10, p.Level)

	typ, ok := p.Type.Get()
	require.True(t, ok)
	assert.Equal(t, Grass, typ)

	bare := New("Mew", 1)
	assert.True(t, bare.Type.Empty())
	assert.Equal(t, Key{Name: "Mew", Level: 1}, bare.Key())
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Pokemon
		b        Pokemon
		expected bool
	}{
		{
			name:     "same name and level",
			a:        New("Bulbasaur", 10),
			b:        New("Bulbasaur", 10),
			expected: true,
		},
		{
			name:     "type is ignored",
			a:        New("Pikachu", 10, WithType(Grass)),
			b:        New("Pikachu", 10, WithType(Fire)),
			expected: true,
		},
		{
			name:     "type versus no type",
			a:        New("Pikachu", 10, WithType(Water)),
			b:        New("Pikachu", 10),
			expected: true,
		},
		{
			name:     "different level",
			a:        New("Bulbasaur", 10),
			b:        New("Bulbasaur", 11),
			expected: false,
		},
		{
			name:     "different name",
			a:        New("Bulbasaur", 10),
			b:        New("Squirtle", 10),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equals(tt.a))
			assert.Equal(t, tt.expected, Compare(tt.a, tt.b) == compare.Equal)
		})
	}
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	p1, p2, p3, p4, p5, _ := func(c []Pokemon) (Pokemon, Pokemon, Pokemon, Pokemon, Pokemon, Pokemon) {
		return c[0], c[1], c[2], c[3], c[4], c[5]
	}(starterCollection())

	assert.True(t, p1.Equals(p2))
	assert.True(t, p1.LessThan(p3))
	assert.True(t, p2.LessThan(p3))
	assert.True(t, p1.LessThan(p4))
	assert.True(t, p4.LessThan(p5))

	assert.Equal(t, compare.Less, Compare(p1, p3))
	assert.Equal(t, compare.Greater, Compare(p3, p2))
	assert.Equal(t, compare.Equal, Compare(p1, p2))

	t.Run("name dominates level", func(t *testing.T) {
		t.Parallel()

		assert.True(t, New("Abra", 99).LessThan(New("Bulbasaur", 1)))
		assert.False(t, New("Bulbasaur", 1).LessThan(New("Abra", 99)))
	})

	t.Run("byte order", func(t *testing.T) {
		t.Parallel()

		// upper case sorts before lower case
		assert.True(t, New("Zubat", 1).LessThan(New("abra", 1)))
		assert.True(t, New("Pika", 50).LessThan(New("Pikachu", 1)))
	})

	t.Run("irreflexive", func(t *testing.T) {
		t.Parallel()

		for _, p := range starterCollection() {
			assert.False(t, p.LessThan(p), p.String())
		}
	})
}

func TestSort(t *testing.T) {
	t.Parallel()

	c := starterCollection()
	assert.False(t, IsSorted(c))

	Sort(c)

	require.True(t, IsSorted(c))

	keys := make([]string, 0, len(c))
	for _, p := range c {
		keys = append(keys, p.Key().String())
	}

	assert.Equal(t, []string{
		"Bulbasaur:10", "Bulbasaur:10", "Bulbasaur:11", "Charmander:9", "Pikachu:10", "Squirtle:10",
	}, keys)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, New("Bulbasaur", 10).Validate())
	require.NoError(t, New("Bulbasaur", -1, WithType(Grass)).Validate())

	err := New("", 10).Validate()
	require.ErrorIs(t, err, ErrEmptyName)
	require.ErrorIs(t, err, perrors.ErrValidation)

	require.ErrorIs(t, New("Missingno", 0, WithType(Type(42))).Validate(), ErrUnknownType)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pokemon(Bulbasaur, 10, GRASS)", New("Bulbasaur", 10, WithType(Grass)).String())
	assert.Equal(t, "Pokemon(Mew, 5, None)", New("Mew", 5).String())
}

func TestUpdateHash(t *testing.T) {
	t.Parallel()

	a, err := hashing.Sha256(New("Pikachu", 10, WithType(Grass)))
	require.NoError(t, err)

	b, err := hashing.Sha256(New("Pikachu", 10))
	require.NoError(t, err)

	c, err := hashing.Sha256(New("Pikachu", 11))
	require.NoError(t, err)

	assert.Equal(t, a, b, "type must not affect the hash")
	assert.NotEqual(t, a, c)

	h := sha256.New()
	require.NoError(t, New("x", 1).UpdateHash(h))
	assert.NotEmpty(t, h.Sum(nil))
}

func TestType(t *testing.T) {
	t.Parallel()

	for _, typ := range Types {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
		assert.True(t, typ.Valid())
	}

	parsed, err := ParseType(" grass ")
	require.NoError(t, err)
	assert.Equal(t, Grass, parsed)

	_, err = ParseType("electric")
	require.ErrorIs(t, err, ErrUnknownType)

	assert.Equal(t, "Type(0)", Type(0).String())
	assert.False(t, Type(0).Valid())
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Key
		wantErr error
	}{
		{input: "Bulbasaur:10", want: Key{Name: "Bulbasaur", Level: 10}},
		{input: " Mr. Mime : 7", want: Key{Name: "Mr. Mime", Level: 7}},
		{input: "Type: Null:3", want: Key{Name: "Type: Null", Level: 3}},
		{input: "Bulbasaur", wantErr: ErrBadKey},
		{input: "Bulbasaur:", wantErr: ErrBadKey},
		{input: ":10", wantErr: ErrBadKey},
		{input: "Bulbasaur:ten", wantErr: ErrBadKey},
		{input: "  :10", wantErr: ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKey(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.want.Probe().Key())
		})
	}
}

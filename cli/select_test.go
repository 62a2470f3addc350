package cli

import (
	"errors"
	"testing"

	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTerminal = errors.New("no terminal")

// scripted answers each prompt with the next item whose text matches,
// recording what it was shown.
type scripted struct {
	answers []string
	shown   [][]string
	err     error
}

func (s *scripted) pick(_ string, items []string) (int, string, error) {
	s.shown = append(s.shown, items)

	if len(s.answers) == 0 {
		return 0, "", s.err
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]

	for i, item := range items {
		if item == answer {
			return i, item, nil
		}
	}

	return 0, "", errTerminal
}

func collection() []pokemon.Pokemon {
	c := []pokemon.Pokemon{
		pokemon.New("Squirtle", 10),
		pokemon.New("Bulbasaur", 10),
		pokemon.New("Bulbasaur", 9),
		pokemon.New("Bulbasaur", 10),
	}
	pokemon.Sort(c)

	return c
}

func TestSelectTeam(t *testing.T) {
	t.Parallel()

	s := &scripted{answers: []string{"Squirtle:10", "Bulbasaur:9", "Squirtle:10", done}}

	keys, err := SelectTeam(s.pick, collection(), 6)
	require.NoError(t, err)

	assert.Equal(t, []pokemon.Key{
		{Name: "Squirtle", Level: 10},
		{Name: "Bulbasaur", Level: 9},
		{Name: "Squirtle", Level: 10},
	}, keys)

	require.Len(t, s.shown, 4)
	assert.Equal(t, []string{done, "Bulbasaur:9", "Bulbasaur:10", "Squirtle:10"}, s.shown[0])
}

func TestSelectTeam_StopsWhenFull(t *testing.T) {
	t.Parallel()

	s := &scripted{answers: []string{"Bulbasaur:10", "Bulbasaur:10", "Squirtle:10"}}

	keys, err := SelectTeam(s.pick, collection(), 2)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
	assert.Len(t, s.shown, 2)
}

func TestSelectTeam_Interrupted(t *testing.T) {
	t.Parallel()

	for _, stop := range []error{promptui.ErrInterrupt, promptui.ErrEOF} {
		s := &scripted{answers: []string{"Squirtle:10"}, err: stop}

		keys, err := SelectTeam(s.pick, collection(), 6)
		require.NoError(t, err)
		assert.Equal(t, []pokemon.Key{{Name: "Squirtle", Level: 10}}, keys)
	}
}

func TestSelectTeam_PickerError(t *testing.T) {
	t.Parallel()

	s := &scripted{answers: []string{"Squirtle:10", "Mew:1"}}

	keys, err := SelectTeam(s.pick, collection(), 6)
	require.ErrorIs(t, err, errTerminal)
	assert.Len(t, keys, 1)
}

func TestSelectTeam_NothingToPick(t *testing.T) {
	t.Parallel()

	s := &scripted{}

	keys, err := SelectTeam(s.pick, nil, 6)
	require.NoError(t, err)
	assert.Nil(t, keys)

	keys, err = SelectTeam(s.pick, collection(), 0)
	require.NoError(t, err)
	assert.Nil(t, keys)
	assert.Empty(t, s.shown)
}

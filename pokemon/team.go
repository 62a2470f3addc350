package pokemon

import (
	"github.com/amp-labs/pokedeck/hashing"
	"github.com/amp-labs/pokedeck/optional"
	"github.com/amp-labs/pokedeck/set"
	"github.com/amp-labs/pokedeck/sortable"
)

// TeamCapacity is the maximum number of cards in a team.
const TeamCapacity = 6

// Search returns the index of a card with the given name and level in a
// sorted collection, or None. When the collection holds several equal
// cards any of their indexes may come back.
func Search(collection []Pokemon, name string, level int) optional.Value[int] {
	return sortable.BinarySearch(collection, Key{Name: name, Level: level}.Probe())
}

// AddToTeam looks up (name, level) in the sorted collection and appends the
// card found there to team, returning the grown team the way append does.
//
// A missing card is reported before a full team: asking a full team for an
// unknown card yields ErrNotFound. On error the returned slice is team
// itself, unchanged. Duplicates are allowed.
func AddToTeam(collection, team []Pokemon, name string, level int) ([]Pokemon, error) {
	key := Key{Name: name, Level: level}

	idx, found := Search(collection, name, level).Get()
	if !found {
		return team, &AddError{Key: key, TeamSize: len(team), Err: ErrNotFound}
	}

	if len(team) > TeamCapacity-1 {
		return team, &AddError{Key: key, TeamSize: len(team), Err: ErrTeamFull}
	}

	return append(team, collection[idx]), nil
}

// Species returns the distinct names in team in natural order, so
// "Porygon2" sorts ahead of "Porygon10".
func Species(team []Pokemon) ([]string, error) {
	names := set.NewNames(hashing.Xxh3)

	for _, p := range team {
		if _, err := names.Add(p.Name); err != nil {
			return nil, err
		}
	}

	return names.Natural(), nil
}

// Distinct returns the team with repeated cards (by name and level)
// dropped, keeping first occurrences.
func Distinct(team []Pokemon) ([]Pokemon, error) {
	members := set.New[Pokemon](hashing.Xxh3)

	for _, p := range team {
		if _, err := members.Add(p); err != nil {
			return nil, err
		}
	}

	return members.Entries(), nil
}

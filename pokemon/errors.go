package pokemon

import (
	"errors"
	"fmt"

	perrors "github.com/amp-labs/pokedeck/errors"
)

var (
	// ErrNotFound is returned by AddToTeam when the collection holds no card
	// with the requested name and level.
	ErrNotFound = errors.New("pokemon not found in collection")

	// ErrTeamFull is returned by AddToTeam when the team already holds
	// TeamCapacity members.
	ErrTeamFull = errors.New("team is full")

	ErrEmptyName   = fmt.Errorf("%w: pokemon name is empty", perrors.ErrValidation)
	ErrUnknownType = fmt.Errorf("%w: unknown pokemon type", perrors.ErrValidation)
	ErrBadKey      = fmt.Errorf("%w: malformed pokemon key", perrors.ErrValidation)
)

// AddError describes a rejected AddToTeam call. It unwraps to ErrNotFound
// or ErrTeamFull.
type AddError struct {
	Key      Key
	TeamSize int
	Err      error
}

func (e *AddError) Error() string {
	if errors.Is(e.Err, ErrTeamFull) {
		return fmt.Sprintf("cannot add %s: %v (%d/%d)", e.Key, e.Err, e.TeamSize, TeamCapacity)
	}

	return fmt.Sprintf("cannot add %s: %v", e.Key, e.Err)
}

func (e *AddError) Unwrap() error {
	return e.Err
}

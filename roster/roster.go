// Package roster keeps a sorted collection and the team built from it
// together, so callers can add cards by name and level without threading
// slices through every call. Every addition is logged and counted.
//
// A Roster is not safe for concurrent use.
package roster

import (
	"context"
	"errors"
	"fmt"
	"slices"

	perrors "github.com/amp-labs/pokedeck/errors"
	"github.com/amp-labs/pokedeck/logger"
	"github.com/amp-labs/pokedeck/optional"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/amp-labs/pokedeck/try"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrInvalidCollection is returned by New when some cards fail validation.
var ErrInvalidCollection = errors.New("invalid collection")

type Roster struct {
	id         uuid.UUID
	collection []pokemon.Pokemon
	team       []pokemon.Pokemon
	metrics    *metrics
}

type options struct {
	id         uuid.UUID
	registerer prometheus.Registerer
}

// Option configures New.
type Option func(*options)

// WithID fixes the roster id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithRegisterer sends the roster's metrics to reg instead of the
// default Prometheus registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New validates every card, then keeps a sorted copy of the collection.
// All invalid cards are reported, not only the first.
func New(ctx context.Context, collection []pokemon.Pokemon, opts ...Option) (*Roster, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	var errs perrors.Collection
	for i, p := range collection {
		errs.Addf(p.Validate(), "card %d", i)
	}

	if errs.HasError() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCollection, errs.GetError())
	}

	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}

	m := defaultMetrics.Get()
	if cfg.registerer != nil {
		m = newMetrics(cfg.registerer)
	}

	sorted := slices.Clone(collection)
	pokemon.Sort(sorted)

	r := &Roster{
		id:         cfg.id,
		collection: sorted,
		metrics:    m,
	}

	logger.Get(r.logContext(ctx)).Debug("roster created", "collection_size", len(sorted))

	return r, nil
}

func (r *Roster) logContext(ctx context.Context) context.Context {
	return logger.With(ctx, "roster_id", r.id.String())
}

// ID identifies the roster in logs.
func (r *Roster) ID() uuid.UUID {
	return r.id
}

// Find looks a card up in the collection.
func (r *Roster) Find(name string, level int) optional.Value[pokemon.Pokemon] {
	idx := pokemon.Search(r.collection, name, level)
	r.metrics.recordSearch(idx.NonEmpty())

	return optional.Map(idx, func(i int) pokemon.Pokemon {
		return r.collection[i]
	})
}

// Add moves the card (name, level) from the collection into the team.
// It fails with pokemon.ErrNotFound or pokemon.ErrTeamFull and leaves the
// team untouched in that case.
func (r *Roster) Add(ctx context.Context, name string, level int) (pokemon.Pokemon, error) {
	ctx = r.logContext(ctx)

	team, err := pokemon.AddToTeam(r.collection, r.team, name, level)

	r.metrics.recordSearch(!errors.Is(err, pokemon.ErrNotFound))
	r.metrics.recordAdd(err, len(team))

	if err != nil {
		err = logger.AnnotateError(err,
			"name", name,
			"level", level,
			"team_size", len(r.team))

		logger.Get(ctx).Warn("pokemon rejected", "error", err)

		return pokemon.Pokemon{}, err
	}

	r.team = team
	added := team[len(team)-1]

	logger.Get(ctx).Info("pokemon added to team",
		"pokemon", added.String(),
		"team_size", len(r.team))

	return added, nil
}

// AddAll adds each key in turn and reports one result per key. A failure
// does not stop later keys from being tried.
func (r *Roster) AddAll(ctx context.Context, keys ...pokemon.Key) []try.Try[pokemon.Pokemon] {
	results := make([]try.Try[pokemon.Pokemon], 0, len(keys))

	for _, key := range keys {
		results = append(results, try.Of(r.Add(ctx, key.Name, key.Level)))
	}

	return results
}

// Team returns a copy of the current team.
func (r *Roster) Team() []pokemon.Pokemon {
	return slices.Clone(r.team)
}

// Collection returns a copy of the sorted collection.
func (r *Roster) Collection() []pokemon.Pokemon {
	return slices.Clone(r.collection)
}

// Remaining is the number of free team slots.
func (r *Roster) Remaining() int {
	return max(pokemon.TeamCapacity-len(r.team), 0)
}

// Full reports whether the next Add will fail with ErrTeamFull.
func (r *Roster) Full() bool {
	return r.Remaining() == 0
}

// Species lists the distinct names on the team in natural order.
func (r *Roster) Species() ([]string, error) {
	return pokemon.Species(r.team)
}

package roster

import (
	"errors"

	"github.com/amp-labs/pokedeck/lazy"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAdded    = "added"
	outcomeNotFound = "not_found"
	outcomeTeamFull = "team_full"
	outcomeOther    = "error"

	resultHit  = "hit"
	resultMiss = "miss"
)

type metrics struct {
	// additions counts AddToTeam attempts by outcome.
	additions *prometheus.CounterVec

	// searches counts lookups against the collection by result.
	searches *prometheus.CounterVec

	// teamSize observes the team size after every successful addition.
	teamSize prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	m := &metrics{
		additions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedeck_team_additions_total",
			Help: "The number of attempts to add a pokemon to a team, by outcome",
		}, []string{"outcome"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedeck_collection_searches_total",
			Help: "The number of binary searches run against a collection, by result",
		}, []string{"result"}),
		teamSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pokedeck_team_size",
			Help:    "Team size after a successful addition",
			Buckets: prometheus.LinearBuckets(1, 1, pokemon.TeamCapacity),
		}),
	}

	// Pre-initialize so dashboards see zeros before the first event.
	for _, outcome := range []string{outcomeAdded, outcomeNotFound, outcomeTeamFull, outcomeOther} {
		m.additions.WithLabelValues(outcome)
	}

	m.searches.WithLabelValues(resultHit)
	m.searches.WithLabelValues(resultMiss)

	return m
}

// Metrics registered against the default registry are created once, on
// first use, since registering them twice panics.
var defaultMetrics = lazy.New(func() *metrics { //nolint:gochecknoglobals
	return newMetrics(prometheus.DefaultRegisterer)
})

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeAdded
	case errors.Is(err, pokemon.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, pokemon.ErrTeamFull):
		return outcomeTeamFull
	default:
		return outcomeOther
	}
}

func (m *metrics) recordAdd(err error, size int) {
	m.additions.WithLabelValues(outcomeOf(err)).Inc()

	if err == nil {
		m.teamSize.Observe(float64(size))
	}
}

func (m *metrics) recordSearch(found bool) {
	if found {
		m.searches.WithLabelValues(resultHit).Inc()
	} else {
		m.searches.WithLabelValues(resultMiss).Inc()
	}
}

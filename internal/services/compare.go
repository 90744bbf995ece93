package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/futscout/futscout/internal/dataset"
	"github.com/futscout/futscout/internal/models"
)

// Soft-failure errors: the compare handler turns these into an {error}
// payload with HTTP 200 rather than an HTTP error. The messages are the wire
// format.
var (
	ErrNoPlayersMatch = errors.New("No players match the filters.")
	ErrPlayerNotFound = errors.New("Player not found in the filtered pool.")
)

// Compare builds the pool once and ranks both players against it. Using the
// shared pool is the central correctness invariant: a comparison only means
// something when both players are percentiled against the same population.
func (s *ScoutService) Compare(league, playerA, playerB, pos string, min90s float64) (*models.Comparison, error) {
	pool := s.FilterPool(league, pos, min90s)
	if pool.Empty() {
		return nil, ErrNoPlayersMatch
	}

	a, ok := pool.FindPlayer(playerA)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	b, ok := pool.FindPlayer(playerB)
	if !ok {
		return nil, ErrPlayerNotFound
	}

	s.logger.WithFields(logrus.Fields{
		"league":   league,
		"pos":      pos,
		"min90s":   min90s,
		"pool":     pool.Len(),
		"player_a": playerA,
		"player_b": playerB,
	}).Debug("Comparing players")

	return &models.Comparison{
		League:  league,
		Filters: models.Filters{Pos: pos, Min90s: min90s},
		PlayerA: s.profile(pool, a),
		PlayerB: s.profile(pool, b),
	}, nil
}

// profile assembles one player's identity fields plus radar and heatmap.
// Every numeric leaf is a plain Go number or null by the time it serializes.
func (s *ScoutService) profile(pool Pool, row dataset.Row) models.PlayerProfile {
	return models.PlayerProfile{
		Name:     row.Text(dataset.ColPlayer),
		Squad:    row.Text(dataset.ColSquad),
		Pos:      row.Text(dataset.ColPos),
		Age:      row.Num(dataset.ColAge).IntPtr(),
		Minutes:  row.Num(dataset.ColMin).IntPtr(),
		Nineties: row.Num(dataset.ColNineties).FloatPtr(),
		Radar:    buildRadar(pool, row),
		Heatmap:  buildHeatmap(row),
	}
}

package services

import (
	"sort"

	"github.com/futscout/futscout/internal/dataset"
	"github.com/futscout/futscout/internal/models"
)

// Players lists the filtered pool for a roster view, optionally narrowed to
// one squad, sorted by (Squad, Player) ascending.
func (s *ScoutService) Players(league, pos string, min90s float64, squad string) []models.PlayerSummary {
	pool := s.FilterPool(league, pos, min90s)
	if squad != "" {
		pool = pool.BySquad(squad)
	}

	out := make([]models.PlayerSummary, 0, pool.Len())
	for _, r := range pool.Rows() {
		out = append(out, models.PlayerSummary{
			Player:   r.Text(dataset.ColPlayer),
			Squad:    r.Text(dataset.ColSquad),
			Pos:      r.Text(dataset.ColPos),
			Age:      r.Num(dataset.ColAge).IntPtr(),
			Min:      r.Num(dataset.ColMin).IntPtr(),
			Nineties: r.Num(dataset.ColNineties).FloatPtr(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Squad != out[j].Squad {
			return out[i].Squad < out[j].Squad
		}
		return out[i].Player < out[j].Player
	})
	return out
}

package services

import (
	"github.com/sirupsen/logrus"

	"github.com/futscout/futscout/internal/dataset"
)

// PositionAll is the sentinel position filter meaning "no position filter".
const PositionAll = "ALL"

// Pool is the filtered comparison population for one request. It is a view
// over the dataset snapshot and is never mutated after construction.
type Pool struct {
	rows []dataset.Row
}

func (p Pool) Rows() []dataset.Row {
	return p.rows
}

func (p Pool) Len() int {
	return len(p.rows)
}

func (p Pool) Empty() bool {
	return len(p.rows) == 0
}

// BySquad narrows the pool to one squad, for roster listings.
func (p Pool) BySquad(squad string) Pool {
	var rows []dataset.Row
	for _, r := range p.rows {
		if r.Text(dataset.ColSquad) == squad {
			rows = append(rows, r)
		}
	}
	return Pool{rows: rows}
}

// FindPlayer returns the first pool row whose name matches exactly.
func (p Pool) FindPlayer(name string) (dataset.Row, bool) {
	for _, r := range p.rows {
		if r.Text(dataset.ColPlayer) == name {
			return r, true
		}
	}
	return dataset.Row{}, false
}

// ScoutService owns the comparison logic: pool filtering, radar and heatmap
// aggregation, and the two-player comparison.
type ScoutService struct {
	store  *dataset.Store
	logger *logrus.Logger
}

func NewScoutService(store *dataset.Store, logger *logrus.Logger) *ScoutService {
	return &ScoutService{
		store:  store,
		logger: logger,
	}
}

// FilterPool selects the comparison population: exact league match, at least
// min90s match-equivalents played (missing 90s counts as 0), and an exact
// position match unless pos is ALL. An empty pool is a valid result.
func (s *ScoutService) FilterPool(league, pos string, min90s float64) Pool {
	snap := s.store.Snapshot()

	var rows []dataset.Row
	for _, r := range snap.Rows() {
		if r.Text(dataset.ColComp) != league {
			continue
		}
		if r.Num(dataset.ColNineties).Or(0) < min90s {
			continue
		}
		if pos != "" && pos != PositionAll && r.Text(dataset.ColPos) != pos {
			continue
		}
		rows = append(rows, r)
	}
	return Pool{rows: rows}
}

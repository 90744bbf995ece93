package stats

import "github.com/futscout/futscout/internal/dataset"

// Mode selects how a raw column value becomes a comparable unit.
type Mode string

const (
	// ModePer90 divides the season total by 90s played.
	ModePer90 Mode = "per90"
	// ModeRaw uses the column as-is.
	ModeRaw Mode = "raw"
	// ModePct is a column that already holds a percentage; no transformation.
	ModePct Mode = "pct"
)

// Per90 converts a season total into a per-match-equivalent rate. The rate is
// undefined unless both inputs are present and 90s played is positive.
func Per90(value, nineties dataset.Value) dataset.Value {
	if !value.Valid() || !nineties.Valid() || nineties.Float() <= 0 {
		return dataset.None()
	}
	return dataset.Float(value.Float() / nineties.Float())
}

// Normalize produces the pool's distribution and the player's own value for
// one metric column under the given mode. Rows that cannot produce a value
// yield missing entries, which PercentileRank later drops.
func Normalize(pool []dataset.Row, row dataset.Row, col string, mode Mode) ([]dataset.Value, dataset.Value) {
	dist := make([]dataset.Value, 0, len(pool))

	if mode == ModePer90 {
		for _, p := range pool {
			dist = append(dist, Per90(p.Num(col), p.Num(dataset.ColNineties)))
		}
		return dist, Per90(row.Num(col), row.Num(dataset.ColNineties))
	}

	// raw and pct both read the column unchanged
	for _, p := range pool {
		dist = append(dist, p.Num(col))
	}
	return dist, row.Num(col)
}

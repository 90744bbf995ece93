package services

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/futscout/futscout/internal/dataset"
	"github.com/futscout/futscout/internal/models"
	"github.com/futscout/futscout/internal/stats"
)

// RadarMetric is one radar axis: the source column, its display label, and
// how the raw column is normalized before ranking.
type RadarMetric struct {
	Column string
	Label  string
	Mode   stats.Mode
}

// RadarSpec fixes the radar dimensions. Order is the axis order on the chart.
var RadarSpec = []RadarMetric{
	{"Gls", "Goals/90", stats.ModePer90},
	{"Ast", "Assists/90", stats.ModePer90},
	{"xG", "xG/90", stats.ModePer90},
	{"xAG", "xAG/90", stats.ModePer90},
	{"PrgP", "Prog Passes/90", stats.ModePer90},
	{"PrgC", "Prog Carries/90", stats.ModePer90},
	{"KP", "Key Passes/90", stats.ModePer90},
	{"SCA90", "SCA/90", stats.ModeRaw},
	{"Tkl+Int", "Tkl+Int/90", stats.ModePer90},
	{"Touches", "Touches/90", stats.ModePer90},
	{"Cmp%", "Pass %", stats.ModePct},
}

// buildRadar ranks one player against the pool across every radar metric.
// A metric the player has no value for displays as 0 and ranks at 0; every
// slot still contributes to the overall mean.
func buildRadar(pool Pool, row dataset.Row) models.Radar {
	labels := make([]string, 0, len(RadarSpec))
	values := make([]float64, 0, len(RadarSpec))
	percentiles := make([]float64, 0, len(RadarSpec))

	for _, m := range RadarSpec {
		dist, v := stats.Normalize(pool.Rows(), row, m.Column, m.Mode)
		labels = append(labels, m.Label)
		values = append(values, v.Or(0))
		percentiles = append(percentiles, stats.PercentileRank(dist, v))
	}

	return models.Radar{
		Labels:      labels,
		Percentiles: percentiles,
		Values:      values,
		Overall:     overallScore(percentiles),
	}
}

// overallScore is the rounded plain mean over all metric slots.
func overallScore(percentiles []float64) int {
	if len(percentiles) == 0 {
		return 0
	}
	return int(math.Round(stat.Mean(percentiles, nil)))
}

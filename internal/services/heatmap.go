package services

import (
	"gonum.org/v1/gonum/floats"

	"github.com/futscout/futscout/internal/dataset"
	"github.com/futscout/futscout/internal/models"
)

// Pitch-third source columns, defensive to attacking. Touch counts come from
// the possession table, tackle counts from the defense table.
var (
	touchThirdColumns  = [3]string{"Def 3rd_stats_possession", "Mid 3rd_stats_possession", "Att 3rd_stats_possession"}
	tackleThirdColumns = [3]string{"Def 3rd", "Mid 3rd", "Att 3rd"}

	thirdLabels   = []string{"Def 3rd", "Mid 3rd", "Att 3rd"}
	heatmapLabels = []string{"Touches share", "Tackles share"}
)

// thirdShares normalizes the three per-third counts into shares of their sum.
// Missing cells stay missing and do not contribute to the sum; when the
// defined sum is 0 the raw values pass through unnormalized.
func thirdShares(row dataset.Row, cols [3]string) [3]dataset.Value {
	var vals [3]dataset.Value
	defined := make([]float64, 0, 3)
	for i, c := range cols {
		vals[i] = row.Num(c)
		if vals[i].Valid() {
			defined = append(defined, vals[i].Float())
		}
	}

	sum := floats.Sum(defined)
	if sum <= 0 {
		return vals
	}
	for i := range vals {
		if vals[i].Valid() {
			vals[i] = dataset.Float(vals[i].Float() / sum)
		}
	}
	return vals
}

// buildHeatmap assembles the 3x2 share matrix for one player. The two columns
// are normalized independently.
func buildHeatmap(row dataset.Row) models.Heatmap {
	touch := thirdShares(row, touchThirdColumns)
	tackle := thirdShares(row, tackleThirdColumns)

	matrix := make([][]dataset.Value, len(thirdLabels))
	for i := range matrix {
		matrix[i] = []dataset.Value{touch[i], tackle[i]}
	}

	return models.Heatmap{
		Matrix:  matrix,
		XLabels: heatmapLabels,
		YLabels: thirdLabels,
	}
}

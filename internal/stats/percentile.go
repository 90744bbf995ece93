package stats

import "github.com/futscout/futscout/internal/dataset"

// PercentileRank returns the percentile (0-100) of v against dist, with the
// probed value appended to the distribution before ranking. Ties share the
// averaged rank. Missing entries are dropped; an empty distribution or a
// missing v returns exactly 0.0 — "no comparison possible" floors the score
// by convention rather than erroring.
func PercentileRank(dist []dataset.Value, v dataset.Value) float64 {
	if !v.Valid() {
		return 0.0
	}

	defined := 0
	less := 0
	equal := 1 // the probed value ties with itself
	for _, d := range dist {
		if !d.Valid() {
			continue
		}
		defined++
		switch {
		case d.Float() < v.Float():
			less++
		case d.Float() == v.Float():
			equal++
		}
	}
	if defined == 0 {
		return 0.0
	}

	// Average rank of the tie group containing v, over defined+1 entries.
	// Equivalent to sorting and averaging 1-based rank positions among ties.
	avgRank := float64(less) + (float64(equal)+1)/2
	return avgRank / float64(defined+1) * 100
}

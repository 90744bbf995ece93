package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name        string
		percentiles []float64
		want        int
	}{
		{"fixed example", []float64{50.0, 100.0, 0.0}, 50},
		{"rounds up", []float64{50.0, 51.0}, 51}, // mean 50.5
		{"empty", nil, 0},
		{"all floored", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallScore(tt.percentiles))
		})
	}
}

func TestBuildRadarShape(t *testing.T) {
	svc := newTestService([][]string{
		row(map[string]string{"Player": "Ana", "Comp": "Liga", "90s": "10", "Gls": "10", "Cmp%": "80"}),
		row(map[string]string{"Player": "Ben", "Comp": "Liga", "90s": "10", "Gls": "5", "Cmp%": "90"}),
	})
	pool := svc.FilterPool("Liga", PositionAll, 0)
	ana, _ := pool.FindPlayer("Ana")

	radar := buildRadar(pool, ana)

	require.Len(t, radar.Labels, len(RadarSpec))
	require.Len(t, radar.Values, len(RadarSpec))
	require.Len(t, radar.Percentiles, len(RadarSpec))
	assert.Equal(t, "Goals/90", radar.Labels[0])
	assert.Equal(t, "Pass %", radar.Labels[len(radar.Labels)-1])
}

func TestBuildRadarValuesAndPercentiles(t *testing.T) {
	svc := newTestService([][]string{
		row(map[string]string{"Player": "Ana", "Comp": "Liga", "90s": "10", "Gls": "10"}),
		row(map[string]string{"Player": "Ben", "Comp": "Liga", "90s": "10", "Gls": "5"}),
	})
	pool := svc.FilterPool("Liga", PositionAll, 0)
	ana, _ := pool.FindPlayer("Ana")
	ben, _ := pool.FindPlayer("Ben")

	radarA := buildRadar(pool, ana)
	radarB := buildRadar(pool, ben)

	// Goals/90: Ana 1.0 beats Ben 0.5. Combined with the probe the higher
	// rate ranks 2.5/3 averaged with its pool twin, the lower 1.5/3.
	assert.InDelta(t, 1.0, radarA.Values[0], 1e-9)
	assert.InDelta(t, 0.5, radarB.Values[0], 1e-9)
	assert.Greater(t, radarA.Percentiles[0], radarB.Percentiles[0])

	// Metrics with no source data display as 0 and rank at the floor.
	last := len(RadarSpec) - 1
	assert.Equal(t, 0.0, radarA.Values[last])
	assert.Equal(t, 0.0, radarA.Percentiles[last])
}

func TestBuildRadarIdenticalPlayersMatch(t *testing.T) {
	cells := map[string]string{
		"Comp": "Liga", "90s": "10", "Gls": "5", "Ast": "3", "xG": "4.2",
		"SCA90": "2.5", "Cmp%": "85.0",
	}
	a := map[string]string{"Player": "Ana"}
	b := map[string]string{"Player": "Ben"}
	for k, v := range cells {
		a[k] = v
		b[k] = v
	}

	svc := newTestService([][]string{row(a), row(b)})
	pool := svc.FilterPool("Liga", PositionAll, 0)
	ana, _ := pool.FindPlayer("Ana")
	ben, _ := pool.FindPlayer("Ben")

	radarA := buildRadar(pool, ana)
	radarB := buildRadar(pool, ben)

	assert.Equal(t, radarA.Percentiles, radarB.Percentiles)
	assert.Equal(t, radarA.Overall, radarB.Overall)

	// Two identical rows plus the tying probe: average rank 2 of 3.
	assert.InDelta(t, 100.0*2.0/3.0, radarA.Percentiles[0], 1e-9)
}

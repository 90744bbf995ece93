package models

import "github.com/futscout/futscout/internal/dataset"

// Radar is one player's percentile profile over the fixed metric list.
// The three slices are parallel and ordered by radar axis.
type Radar struct {
	Labels      []string  `json:"labels"`
	Percentiles []float64 `json:"percentiles"`
	Values      []float64 `json:"values"`
	Overall     int       `json:"overall"`
}

// Heatmap is a 3x2 share matrix: rows are pitch thirds (defensive, middle,
// attacking), columns are touch share and tackle share. Cells whose source
// stat is missing stay null rather than reading as zero.
type Heatmap struct {
	Matrix  [][]dataset.Value `json:"matrix"`
	XLabels []string          `json:"xLabels"`
	YLabels []string          `json:"yLabels"`
}

type Filters struct {
	Pos    string  `json:"pos"`
	Min90s float64 `json:"min90s"`
}

// PlayerProfile is one side of a comparison: identity fields plus the radar
// and heatmap results computed against the shared pool.
type PlayerProfile struct {
	Name     string   `json:"name"`
	Squad    string   `json:"squad"`
	Pos      string   `json:"pos"`
	Age      *int     `json:"age"`
	Minutes  *int     `json:"minutes"`
	Nineties *float64 `json:"nineties"`
	Radar    Radar    `json:"radar"`
	Heatmap  Heatmap  `json:"heatmap"`
}

type Comparison struct {
	League  string        `json:"league"`
	Filters Filters       `json:"filters"`
	PlayerA PlayerProfile `json:"playerA"`
	PlayerB PlayerProfile `json:"playerB"`
}

// PlayerSummary is one `/players` listing row. Field names match the source
// CSV columns the frontend binds to.
type PlayerSummary struct {
	Player   string   `json:"Player"`
	Squad    string   `json:"Squad"`
	Pos      string   `json:"Pos"`
	Age      *int     `json:"Age"`
	Min      *int     `json:"Min"`
	Nineties *float64 `json:"90s"`
}

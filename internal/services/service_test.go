package services

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/futscout/futscout/internal/dataset"
)

var fixtureHeader = []string{
	"Player", "Squad", "Comp", "Pos", "Age", "Min", "90s",
	"Gls", "Ast", "xG", "xAG", "PrgP", "PrgC", "KP", "SCA90", "Tkl+Int", "Touches", "Cmp%",
	"Def 3rd_stats_possession", "Mid 3rd_stats_possession", "Att 3rd_stats_possession",
	"Def 3rd", "Mid 3rd", "Att 3rd",
}

// row builds a fixture row from a partial column map; unset columns are "".
func row(cells map[string]string) []string {
	out := make([]string, len(fixtureHeader))
	for i, col := range fixtureHeader {
		out[i] = cells[col]
	}
	return out
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(rows [][]string) *ScoutService {
	ds := dataset.New(fixtureHeader, rows)
	return NewScoutService(dataset.NewStore(ds), quietLogger())
}

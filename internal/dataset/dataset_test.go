package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")
	csv := "Player,Squad,Comp,Pos,90s,Gls\n" +
		"Ana Silva,Porto,Liga,FW,20.1,15\n" +
		"Ben Kamara,Braga,Liga,MF,18.0,4\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, 6, ds.NumCols())
	assert.Equal(t, "Ana Silva", ds.Row(0).Text(ColPlayer))
	assert.Equal(t, 15.0, ds.Row(0).Num("Gls").Float())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRowToleratesAbsentColumnsAndBadCells(t *testing.T) {
	ds := New(
		[]string{"Player", "90s", "Gls"},
		[][]string{
			{"Ana", "20.1", "n/a"},
			{"Ben"}, // ragged row
		},
	)

	r := ds.Row(0)
	assert.False(t, r.Num("Gls").Valid(), "unparsable cell is missing")
	assert.False(t, r.Num("xG").Valid(), "absent column is missing")
	assert.Equal(t, "", r.Text("Squad"))

	short := ds.Row(1)
	assert.False(t, short.Num("90s").Valid())
	assert.Equal(t, "", short.Text("Gls"))
}

func TestDistinctSorted(t *testing.T) {
	ds := New(
		[]string{"Comp", "Pos"},
		[][]string{
			{"Serie A", "MF"},
			{"La Liga", "FW"},
			{"Serie A", "FW"},
			{"", "DF"},
		},
	)

	assert.Equal(t, []string{"La Liga", "Serie A"}, ds.Leagues())
	assert.Equal(t, []string{"DF", "FW", "MF"}, ds.Positions())
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"present", Float(0.25), "0.25"},
		{"missing", None(), "null"},
		{"zero is not missing", Float(0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Value
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.v, back)
		})
	}
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, 7.0, Float(7).Or(0))
	assert.Equal(t, 3.5, None().Or(3.5))

	age := Parse("27")
	require.NotNil(t, age.IntPtr())
	assert.Equal(t, 27, *age.IntPtr())
	assert.Nil(t, Parse("").IntPtr())
	assert.Nil(t, Parse("abc").FloatPtr())
}

func TestStoreSwap(t *testing.T) {
	first := New([]string{"Player"}, [][]string{{"Ana"}})
	second := New([]string{"Player"}, [][]string{{"Ana"}, {"Ben"}})

	store := NewStore(first)
	assert.Equal(t, 1, store.Snapshot().NumRows())

	store.Swap(second)
	assert.Equal(t, 2, store.Snapshot().NumRows())
}

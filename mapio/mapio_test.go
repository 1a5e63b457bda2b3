package mapio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/mapio"
	"github.com/MONICgh/sipp-go/obstacle"
)

const sampleMap = `type octile
height 3
width 4
map
...@
.##.
....
`

func TestReadMap_ParsesFreeAndBlockedCells(t *testing.T) {
	free, err := mapio.ReadMap(strings.NewReader(sampleMap))
	require.NoError(t, err)

	want := [][]bool{
		{true, true, true, false},
		{true, false, false, true},
		{true, true, true, true},
	}
	require.Equal(t, want, free)
}

func TestReadMap_RowWidthMismatchReturnsError(t *testing.T) {
	bad := "type octile\nheight 2\nwidth 4\nmap\n...\n....\n"
	_, err := mapio.ReadMap(strings.NewReader(bad))
	require.ErrorIs(t, err, mapio.ErrInvalidMapDimensions)
}

func TestReadMap_MalformedHeaderReturnsError(t *testing.T) {
	bad := "type octile\nheight abc\nwidth 4\nmap\n"
	_, err := mapio.ReadMap(strings.NewReader(bad))
	require.ErrorIs(t, err, mapio.ErrInvalidMapDimensions)
}

func TestReadMapLegacy_ClipsToSeventyRowsAndColumns(t *testing.T) {
	var b strings.Builder
	const n = 72
	b.WriteString("type octile\n")
	b.WriteString("height 72\n")
	b.WriteString("width 72\n")
	b.WriteString("map\n")
	row := strings.Repeat(".", n) + "\n"
	for i := 0; i < n; i++ {
		b.WriteString(row)
	}

	free, err := mapio.ReadMapLegacy(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, free, 70)
	for i, row := range free {
		require.Lenf(t, row, 70, "row %d", i)
	}
}

func TestReadScenario_ParsesFourIntegers(t *testing.T) {
	start, goal, err := mapio.ReadScenario(strings.NewReader("1 2 3 4\n"))
	require.NoError(t, err)
	require.Equal(t, obstacle.Cell{I: 1, J: 2}, start)
	require.Equal(t, obstacle.Cell{I: 3, J: 4}, goal)
}

func TestReadScenario_WrongFieldCountReturnsError(t *testing.T) {
	_, _, err := mapio.ReadScenario(strings.NewReader("1 2 3\n"))
	require.ErrorIs(t, err, mapio.ErrInvalidScenario)
}

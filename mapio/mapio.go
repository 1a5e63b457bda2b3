package mapio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MONICgh/sipp-go/obstacle"
)

// legacyMaxDim is the historical row/column cap read_from_file applies to
// the dimensions it reports, regardless of how large the file itself is.
const legacyMaxDim = 70

// blockedChars mirrors read_from_file's obstacle glyphs.
const blockedChars = "@T#"

// parseHeader reads a .map file's four-line header and returns the
// declared (height, width).
func parseHeader(sc *bufio.Scanner) (height, width int, err error) {
	if !sc.Scan() {
		return 0, 0, ErrInvalidMapDimensions
	}
	height, err = parseDimLine(sc)
	if err != nil {
		return 0, 0, err
	}
	width, err = parseDimLine(sc)
	if err != nil {
		return 0, 0, err
	}
	if !sc.Scan() {
		return 0, 0, ErrInvalidMapDimensions
	}

	return height, width, nil
}

func parseDimLine(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrInvalidMapDimensions
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, ErrInvalidMapDimensions
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return 0, ErrInvalidMapDimensions
	}

	return n, nil
}

// parseRows reads exactly height data rows of exactly width recognized
// cells each ('.' or one of blockedChars; any other rune is ignored,
// matching read_from_file's `else: continue`).
func parseRows(sc *bufio.Scanner, height, width int) ([][]bool, error) {
	free := make([][]bool, height)
	for i := 0; i < height; i++ {
		if !sc.Scan() {
			return nil, ErrInvalidMapDimensions
		}
		row := make([]bool, 0, width)
		for _, c := range sc.Text() {
			switch {
			case c == '.':
				row = append(row, true)
			case strings.ContainsRune(blockedChars, c):
				row = append(row, false)
			default:
				continue
			}
		}
		if len(row) != width {
			return nil, ErrInvalidMapDimensions
		}
		free[i] = row
	}

	return free, nil
}

// ReadMap parses a .map file into the [][]bool grid.New expects: true
// marks a traversable cell, false an obstacle.
func ReadMap(r io.Reader) ([][]bool, error) {
	sc := bufio.NewScanner(r)
	height, width, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	return parseRows(sc, height, width)
}

// ReadMapLegacy parses a .map file the way read_from_file does: it
// validates every row against the file's full declared dimensions, but
// then reports only the first legacyMaxDim rows and columns, silently
// discarding the rest of a larger map. This is a preserved historical
// bug, not a feature — ReadMap is the entry point every other caller
// should use.
func ReadMapLegacy(r io.Reader) ([][]bool, error) {
	sc := bufio.NewScanner(r)
	height, width, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	full, err := parseRows(sc, height, width)
	if err != nil {
		return nil, err
	}

	clippedHeight := height
	if clippedHeight > legacyMaxDim {
		clippedHeight = legacyMaxDim
	}
	clippedWidth := width
	if clippedWidth > legacyMaxDim {
		clippedWidth = legacyMaxDim
	}

	clipped := make([][]bool, clippedHeight)
	for i := 0; i < clippedHeight; i++ {
		clipped[i] = append([]bool(nil), full[i][:clippedWidth]...)
	}

	return clipped, nil
}

// ReadScenario parses a single "start_i start_j goal_i goal_j" line, the
// format launch.py reads out of a .map.scen file's first line.
func ReadScenario(r io.Reader) (start, goal obstacle.Cell, err error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return obstacle.Cell{}, obstacle.Cell{}, ErrInvalidScenario
	}

	fields := strings.Fields(sc.Text())
	if len(fields) != 4 {
		return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrInvalidScenario, len(fields))
	}

	vals := make([]int, 4)
	for i, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			return obstacle.Cell{}, obstacle.Cell{}, fmt.Errorf("%w: %v", ErrInvalidScenario, convErr)
		}
		vals[i] = n
	}

	return obstacle.Cell{I: vals[0], J: vals[1]}, obstacle.Cell{I: vals[2], J: vals[3]}, nil
}

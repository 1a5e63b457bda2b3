package mapio

import "errors"

var (
	// ErrInvalidMapDimensions is returned when a .map file's header
	// cannot be parsed, or a row's width disagrees with the header.
	ErrInvalidMapDimensions = errors.New("mapio: invalid map dimensions")

	// ErrInvalidScenario is returned when a .scen line does not contain
	// exactly four integers.
	ErrInvalidScenario = errors.New("mapio: invalid scenario line")
)

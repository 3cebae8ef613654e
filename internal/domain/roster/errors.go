package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrEmptyRoster   = errors.New("empty roster")
	ErrDuplicateID   = errors.New("duplicate contender id")
	ErrMissingID     = errors.New("missing contender id")
	ErrNegativeTotal = errors.New("negative pre-race total")
	ErrLoadRoster    = errors.New("load roster failed")
)

package scenario

import "errors"

// Sentinel kinds for scenario search errors.
var (
	ErrTrackedCount     = errors.New("scenario search requires exactly three tracked contenders")
	ErrTargetNotTracked = errors.New("target contender is not part of the title fight")
)

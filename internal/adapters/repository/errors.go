package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrNotFound = errors.New("contender not found")
)

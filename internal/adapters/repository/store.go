// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/okian/clincher/internal/domain/roster"
)

// Store provides read access to the championship roster plus atomic
// replacement. The version increases on every Replace so cached
// derivations of the roster can detect staleness.
type Store interface {
	// List returns every contender in roster order.
	List(ctx context.Context) []roster.Contender

	// Get returns the contender with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (roster.Contender, error)

	// Tracked returns the title-fight contenders in roster order.
	Tracked(ctx context.Context) []roster.Contender

	// Replace swaps the entire roster. The new roster must pass
	// roster.Validate.
	Replace(ctx context.Context, list []roster.Contender) error

	// Version returns a counter that increases on every Replace.
	Version(ctx context.Context) uint64

	// Count returns the number of contenders.
	Count(ctx context.Context) int
}

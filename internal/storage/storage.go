// Package storage defines the persistence boundary for character records.
// Backends live in subpackages; the sheet layer only sees the Store interface.
package storage

import (
	"context"
	"errors"

	"github.com/cory-johannsen/charsheet/internal/game/character"
)

// ErrNotFound is returned when a character ID has no persisted record.
var ErrNotFound = errors.New("storage: character not found")

// Store persists character records.
//
// LoadAll is best effort: records that cannot be parsed are skipped and
// logged, never fatal. Save overwrites the record keyed by its ID. Delete of
// an absent ID returns ErrNotFound.
type Store interface {
	LoadAll(ctx context.Context) ([]*character.Character, error)
	Save(ctx context.Context, c *character.Character) error
	Delete(ctx context.Context, id string) error
}

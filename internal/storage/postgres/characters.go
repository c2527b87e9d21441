package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/game/character"
	"github.com/cory-johannsen/charsheet/internal/storage"
)

// CharacterStore persists character records as JSONB documents. The record
// keeps the same shape as the file backend; the database adds nothing beyond
// durable multi-machine storage.
type CharacterStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

// NewCharacterStore creates a CharacterStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterStore(db *pgxpool.Pool, log *zap.Logger) *CharacterStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CharacterStore{db: db, log: log}
}

// LoadAll returns every stored character. Rows whose document no longer
// parses are skipped and logged, matching the file backend's best-effort
// contract.
func (s *CharacterStore) LoadAll(ctx context.Context) ([]*character.Character, error) {
	rows, err := s.db.Query(ctx, `SELECT id, doc FROM characters ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("loading characters: %w", err)
	}
	defer rows.Close()

	out := make([]*character.Character, 0)
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		var c character.Character
		if err := json.Unmarshal(doc, &c); err != nil {
			s.log.Warn("unparseable character row skipped",
				zap.String("id", id), zap.Error(err))
			continue
		}
		c.Normalize()
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating character rows: %w", err)
	}
	return out, nil
}

// Save upserts the record keyed by its ID.
func (s *CharacterStore) Save(ctx context.Context, c *character.Character) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding character %q: %w", c.ID, err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO characters (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		c.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("upserting character %q: %w", c.ID, err)
	}
	return nil
}

// Delete removes the record. Deleting an absent ID returns
// storage.ErrNotFound.
func (s *CharacterStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting character %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting character %q: %w", id, storage.ErrNotFound)
	}
	return nil
}

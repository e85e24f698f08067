// Package bunstore persists session slots in a local sqlite database via
// bun. It is the durable Storage used when the client should survive
// process restarts without scattering state files around.
package bunstore

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	portal "github.com/swdepot/go-portal"
)

var _ portal.Storage = &Store{}

type sessionSlot struct {
	bun.BaseModel `bun:"table:session_slots,alias:slot"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Store is a sqlite-backed portal.Storage.
type Store struct {
	db *bun.DB
}

// Open creates (or opens) the database at dsn and ensures the slot table
// exists. Use ":memory:" for a throwaway store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to open session database")
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if _, err := db.NewCreateTable().
		Model((*sessionSlot)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		db.Close()
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to create slot table")
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	slot := &sessionSlot{}
	err := s.db.NewSelect().
		Model(slot).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", goerrors.Wrap(err, goerrors.CategoryOperation, "unable to read session slot")
	}
	return slot.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	slot := &sessionSlot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	_, err := s.db.NewInsert().
		Model(slot).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to write session slot")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*sessionSlot)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "unable to delete session slot")
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

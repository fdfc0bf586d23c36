package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var payload string
	row := r.DB.QueryRowContext(ctx, getKVEntry, name)
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Get").
			Str("name", name).
			Msg("failed to read kv entry")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return payload, true, nil
}

func (r *kvRepository) Set(ctx context.Context, name string, payload string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertKVEntry, name, payload)
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("name", name).
			Msg("failed to upsert kv entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteKVEntry, name)
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Delete").
			Str("name", name).
			Msg("failed to delete kv entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

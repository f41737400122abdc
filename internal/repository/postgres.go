package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)

// PostgresRepository is the shared base embedded by the concrete
// repositories. It holds the pooled handle; ownership of the handle stays
// with the caller that opened it.
type PostgresRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPostgresRepository(db *sql.DB, logger zerolog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

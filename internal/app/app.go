// Package app wires up one command invocation: configuration, the database
// connection, the repository and the service stack. The App owns the
// connection for exactly that invocation and must be closed on every exit
// path.
package app

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/studentctl/internal/config"
	"github.com/RubachokBoss/studentctl/internal/database"
	"github.com/RubachokBoss/studentctl/internal/repository"
	"github.com/RubachokBoss/studentctl/internal/service"
	"github.com/RubachokBoss/studentctl/pkg/logger"
)

type App struct {
	Config   *config.Config
	Students service.StudentService

	logger zerolog.Logger
	db     *sql.DB
}

// New loads configuration, opens the database connection and builds the
// service stack. Configuration errors surface before anything is dialed.
// Every log line of the invocation carries the same run_id so interleaved
// runs can be told apart.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Pretty, cfg.Logging.NoColor).
		With().
		Str("run_id", uuid.New().String()).
		Logger()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	studentRepo := repository.NewStudentRepository(db, log)
	students := service.NewStudentService(studentRepo, log)

	return &App{
		Config:   cfg,
		Students: students,
		logger:   log,
		db:       db,
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
			return err
		}
	}
	return nil
}

package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/gdugdh24/reunion-backend/internal/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLogger adapts zerolog to migrate.Logger.
type migrationLogger struct {
	log zerolog.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}

func (l migrationLogger) Verbose() bool {
	return l.log.GetLevel() <= zerolog.DebugLevel
}

// RunMigrations applies every pending migration embedded in the binary.
func RunMigrations(databaseURL string) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	m.Log = migrationLogger{log: logger.With("migrate")}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Error().
				AnErr("source_error", srcErr).
				AnErr("database_error", dbErr).
				Msg("error closing migration instance")
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info().Msg("no new migrations to run")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrations completed successfully")
	return nil
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
)

const (
	connectAttempts   = 3
	connectRetryDelay = 5 * time.Second
)

// Database wraps the PostgreSQL connection held for the duration of a
// pipeline run.
type Database struct {
	conn *sqlx.DB
	log  *zap.Logger
}

// NewDatabase opens a database connection, retrying a few times so that a
// freshly woken database host has a chance to come up.
func NewDatabase(dsn string, log *zap.Logger) (*Database, error) {
	var db *sqlx.DB
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}
		log.Warn("database connection attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < connectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to database after %d attempts", connectAttempts)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	return &Database{conn: db, log: log}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sqlx.DB for queries.
func (db *Database) DB() *sqlx.DB {
	return db.conn
}

// RunMigrations executes all migration files in order.
func (db *Database) RunMigrations() error {
	db.log.Info("running database migrations")

	if err := db.createMigrationsTable(); err != nil {
		return errors.Wrap(err, "creating migrations table")
	}

	migrations := []string{
		"001_create_players.sql",
		"002_create_teams.sql",
		"003_create_games.sql",
		"004_create_team_statistics.sql",
		"005_create_player_statistics.sql",
		"006_create_common_player_info.sql",
		"007_create_league_schedule.sql",
	}

	for _, migration := range migrations {
		if err := db.runMigration(migration); err != nil {
			return errors.Wrapf(err, "running migration %s", migration)
		}
	}

	db.log.Info("migrations complete")
	return nil
}

// createMigrationsTable creates a table to track which migrations have run.
func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

// runMigration runs a single migration file if it hasn't been applied yet.
func (db *Database) runMigration(filename string) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", filename).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		db.log.Debug("migration already applied", zap.String("migration", filename))
		return nil
	}

	migrationPath := filepath.Join("migrations", filename)
	content, err := os.ReadFile(migrationPath)
	if err != nil {
		return errors.Wrap(err, "reading migration file")
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(content)); err != nil {
		return errors.Wrap(err, "executing migration")
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", filename); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.log.Info("migration applied", zap.String("migration", filename))
	return nil
}

// HealthCheck pings the database with a short deadline.
func (db *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}

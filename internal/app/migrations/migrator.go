package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
)

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

// migration is one schema step, tracked by version
type migration struct {
	Version string
	SQL     string
}

// The directory schema. Uniqueness of (first_name, last_name,
// department_id) is deliberately NOT a database constraint; it is checked
// at write time by the employee service.
var steps = []migration{
	{
		Version: "001_create_departments",
		SQL: `
			CREATE TABLE IF NOT EXISTS departments (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL
			);`,
	},
	{
		Version: "002_create_employees",
		SQL: `
			CREATE TABLE IF NOT EXISTS employees (
				id BIGSERIAL PRIMARY KEY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				age INTEGER NOT NULL,
				position TEXT NOT NULL,
				department_id BIGINT NOT NULL REFERENCES departments(id)
			);
			CREATE INDEX IF NOT EXISTS idx_employees_department_id ON employees(department_id);`,
	},
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied
func (m *Migrator) recordMigration(ctx context.Context, version string) error {
	_, err := m.db.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Run applies every pending migration in order. Already-applied steps are
// skipped, so running at every boot is safe.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, step := range steps {
		applied, err := m.isMigrationApplied(ctx, step.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		logger.Info().Str("version", step.Version).Msg("Applying migration")
		if _, err := m.db.Exec(ctx, step.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", step.Version, err)
		}
		if err := m.recordMigration(ctx, step.Version); err != nil {
			return err
		}
	}

	return nil
}

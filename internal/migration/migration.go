// Package migration applies the embedded SQL schema migrations.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strconv"

	_ "github.com/lib/pq"
)

// Migration is one numbered SQL file, e.g. 001_init.sql.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var fileName = regexp.MustCompile(`^(\d+)_([a-z0-9_]+)\.sql$`)

// Load reads every migration file in dir, ordered by version. Files that do
// not follow the NNN_name.sql pattern and repeated versions are errors.
func Load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	seen := make(map[int]string)
	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := fileName.FindStringSubmatch(entry.Name())
		if match == nil {
			return nil, fmt.Errorf("migration %q does not match NNN_name.sql", entry.Name())
		}
		version, _ := strconv.Atoi(match[1])
		if version == 0 {
			return nil, fmt.Errorf("migration %q: version must be positive", entry.Name())
		}
		if other, ok := seen[version]; ok {
			return nil, fmt.Errorf("migrations %q and %q share version %d", other, entry.Name(), version)
		}
		seen[version] = entry.Name()

		body, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading migration %q: %w", entry.Name(), err)
		}
		migrations = append(migrations, Migration{Version: version, Name: match[2], SQL: string(body)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// Pending returns the migrations newer than current, in order.
func Pending(all []Migration, current int) []Migration {
	var pending []Migration
	for _, m := range all {
		if m.Version > current {
			pending = append(pending, m)
		}
	}
	return pending
}

// Migrator handles database schema migrations
type Migrator struct {
	DB         *sql.DB
	migrations []Migration
}

// NewMigrator creates a migrator for the given, already loaded, migrations.
func NewMigrator(db *sql.DB, migrations []Migration) *Migrator {
	return &Migrator{DB: db, migrations: migrations}
}

// InitializeSchema creates the bookkeeping tables
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_versions (
		version INT PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS migration_history (
		id SERIAL PRIMARY KEY,
		version INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		success BOOLEAN NOT NULL,
		errors TEXT
	);
	`)
	return err
}

// GetCurrentVersion gets the newest applied schema version, 0 if none
func (m *Migrator) GetCurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.DB.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version), 0) FROM schema_versions
	`).Scan(&version)
	return version, err
}

// Apply runs every pending migration, each in its own transaction, and stops
// at the first failure. It returns the migrations that were applied.
func (m *Migrator) Apply(ctx context.Context) ([]Migration, error) {
	if err := m.InitializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current version: %w", err)
	}

	var applied []Migration
	for _, migration := range Pending(m.migrations, current) {
		if err := m.applyOne(ctx, migration); err != nil {
			m.recordMigrationHistory(ctx, migration.Version, false, err.Error())
			return applied, fmt.Errorf("migration %03d_%s: %w", migration.Version, migration.Name, err)
		}
		m.recordMigrationHistory(ctx, migration.Version, true, "")
		applied = append(applied, migration)
	}
	return applied, nil
}

func (m *Migrator) applyOne(ctx context.Context, migration Migration) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO schema_versions (version, name)
		VALUES ($1, $2)
	`, migration.Version, migration.Name); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	return tx.Commit()
}

// recordMigrationHistory records migration history
func (m *Migrator) recordMigrationHistory(ctx context.Context, version int, success bool, errorMsg string) {
	_, err := m.DB.ExecContext(ctx, `
		INSERT INTO migration_history (version, success, errors)
		VALUES ($1, $2, $3)
	`, version, success, errorMsg)
	if err != nil {
		slog.WarnContext(ctx, "Failed to record migration history", "error", err, "version", version)
	}
}

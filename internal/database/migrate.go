package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"rangeiq/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Migration is one versioned schema change.
type Migration struct {
	Version string
	Name    string
	Up      string
	Down    string
}

// LoadMigrations reads NNNN_name.up.sql / NNNN_name.down.sql pairs from fsys, ordered by version.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	byVersion := make(map[string]*Migration)
	for _, entry := range entries {
		name := entry.Name()
		var direction string
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			direction = "up"
		case strings.HasSuffix(name, ".down.sql"):
			direction = "down"
		default:
			continue
		}

		base := strings.TrimSuffix(strings.TrimSuffix(name, ".sql"), "."+direction)
		version, label, ok := strings.Cut(base, "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration %s: expected NNNN_name", name)
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: label}
			byVersion[version] = m
		}
		if direction == "up" {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %s has no up script", m.Version)
		}
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// splitStatements breaks a script into statements terminated by ';'.
// The Oracle drivers execute one statement per call and reject the terminator.
func splitStatements(script string) []string {
	var (
		stmts []string
		buf   strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(buf.String()), ";")
			stmts = append(stmts, stmt)
			buf.Reset()
		}
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

// Migrator applies migrations and records them in schema_migrations.
type Migrator struct {
	db         *sqlx.DB
	migrations []Migration
}

func NewMigrator(db *sqlx.DB, fsys fs.FS) (*Migrator, error) {
	migrations, err := LoadMigrations(fsys)
	if err != nil {
		return nil, err
	}
	return &Migrator{db: db, migrations: migrations}, nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("failed to check schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (
    version    VARCHAR2(20) NOT NULL,
    applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT pk_schema_migrations PRIMARY KEY (version)
)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations ORDER BY version`); err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// Up applies every pending migration in version order and returns the applied versions.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, mig := range m.migrations {
		if applied[mig.Version] {
			continue
		}
		for _, stmt := range splitStatements(mig.Up) {
			if _, err := m.db.ExecContext(ctx, stmt); err != nil {
				return done, fmt.Errorf("could not execute migration %s_%s: %w", mig.Version, mig.Name, err)
			}
		}
		if _, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, mig.Version); err != nil {
			return done, fmt.Errorf("could not record migration %s: %w", mig.Version, err)
		}
		logger.Get().Info("Applied migration", zap.String("version", mig.Version), zap.String("name", mig.Name))
		done = append(done, mig.Version)
	}
	return done, nil
}

// Down reverts the most recently applied migration. It returns "" when nothing is applied.
func (m *Migrator) Down(ctx context.Context) (string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return "", err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return "", err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		mig := m.migrations[i]
		if !applied[mig.Version] {
			continue
		}
		if mig.Down == "" {
			return "", fmt.Errorf("migration %s has no down script", mig.Version)
		}
		for _, stmt := range splitStatements(mig.Down) {
			if _, err := m.db.ExecContext(ctx, stmt); err != nil {
				return "", fmt.Errorf("could not revert migration %s_%s: %w", mig.Version, mig.Name, err)
			}
		}
		if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, mig.Version); err != nil {
			return "", fmt.Errorf("could not unrecord migration %s: %w", mig.Version, err)
		}
		logger.Get().Info("Reverted migration", zap.String("version", mig.Version), zap.String("name", mig.Name))
		return mig.Version, nil
	}
	return "", nil
}

// Version returns the highest applied version, or "" for an empty schema.
func (m *Migrator) Version(ctx context.Context) (string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return "", err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return "", err
	}
	latest := ""
	for v := range applied {
		if v > latest {
			latest = v
		}
	}
	return latest, nil
}

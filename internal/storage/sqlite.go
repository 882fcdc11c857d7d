package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/npratt/cube/internal/session"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps each solve as a row, in insertion order.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// runMigrations applies the embedded up migrations. The migrate instance is
// not closed because closing it would close db.
func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// schemaVersion returns the applied migration version.
func (s *SQLiteStore) schemaVersion(ctx context.Context) (uint, error) {
	var version uint
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_migrations LIMIT 1`).Scan(&version)
	return version, err
}

// Load reads every stored solve in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (*session.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT scramble, time_ms, penalty FROM solves ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var (
			r      Record
			timeMS sql.NullInt64
		)
		if err := rows.Scan(&r.Scramble, &timeMS, &r.Penalty); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		if timeMS.Valid {
			r.TimeMS = &timeMS.Int64
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read solves: %w", err)
	}

	return sessionOf(records)
}

// Save inserts the solves not yet stored. Sessions are append-only, so the
// rows already present are the session's first solves.
func (s *SQLiteStore) Save(ctx context.Context, sess *session.Session) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		var stored int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM solves`).Scan(&stored); err != nil {
			return fmt.Errorf("count solves: %w", err)
		}

		records := recordsOf(sess)
		if stored > len(records) {
			return fmt.Errorf("database holds %d solves but session has %d", stored, len(records))
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO solves (scramble, time_ms, penalty) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, r := range records[stored:] {
			var timeMS sql.NullInt64
			if r.TimeMS != nil {
				timeMS = sql.NullInt64{Int64: *r.TimeMS, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, r.Scramble, timeMS, r.Penalty); err != nil {
				return fmt.Errorf("insert solve: %w", err)
			}
		}
		return nil
	})
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Package storage persists catalog snapshots in SQLite.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/vector"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNoSnapshot is returned by LoadSnapshot when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no catalog snapshot stored")

// Store wraps the SQLite database holding the current catalog snapshot.
type Store struct {
	db *sql.DB
}

// SnapshotInfo describes a stored snapshot.
type SnapshotInfo struct {
	ID        string
	CreatedAt time.Time
	Majors    int
}

// Open opens (or creates) the database at path and runs pending migrations.
// Pass ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive and avoids lock errors.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %s: %w", entry.Name(), err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

func parseMigrationVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, fmt.Errorf("migration %q has no version prefix", name)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("migration %q: %w", name, err)
	}
	return version, nil
}

// SaveSnapshot replaces the stored snapshot with majors in a single transaction.
func (s *Store) SaveSnapshot(ctx context.Context, majors []catalog.MajorProfile) (SnapshotInfo, error) {
	info := SnapshotInfo{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Majors:    len(majors),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM majors"); err != nil {
		return SnapshotInfo{}, fmt.Errorf("clearing majors: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots"); err != nil {
		return SnapshotInfo{}, fmt.Errorf("clearing snapshots: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (id, created_at, majors) VALUES (?, ?, ?)",
		info.ID, info.CreatedAt.Format(time.RFC3339Nano), info.Majors,
	); err != nil {
		return SnapshotInfo{}, fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO majors
		(snapshot_id, position, name, description, logic_math, verbal, social, art, science, streams, skills, prospects)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range majors {
		streams, err := encodeList(m.Streams)
		if err != nil {
			return SnapshotInfo{}, err
		}
		skills, err := encodeList(m.Skills)
		if err != nil {
			return SnapshotInfo{}, err
		}
		a := m.Affinity
		if _, err := stmt.ExecContext(ctx,
			info.ID, i, m.Name, m.Description,
			a[vector.LogicMath], a[vector.Verbal], a[vector.Social], a[vector.Art], a[vector.Science],
			streams, skills, m.Prospects,
		); err != nil {
			return SnapshotInfo{}, fmt.Errorf("inserting major %q: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SnapshotInfo{}, fmt.Errorf("commit: %w", err)
	}
	return info, nil
}

// LoadSnapshot returns the stored majors in their saved order.
func (s *Store) LoadSnapshot(ctx context.Context) ([]catalog.MajorProfile, SnapshotInfo, error) {
	var (
		info    SnapshotInfo
		created string
	)
	err := s.db.QueryRowContext(ctx, "SELECT id, created_at, majors FROM snapshots LIMIT 1").Scan(&info.ID, &created, &info.Majors)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, SnapshotInfo{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, SnapshotInfo{}, fmt.Errorf("reading snapshot: %w", err)
	}
	if info.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, SnapshotInfo{}, fmt.Errorf("parsing snapshot time: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, description, logic_math, verbal, social, art, science, streams, skills, prospects
		FROM majors WHERE snapshot_id = ? ORDER BY position`, info.ID)
	if err != nil {
		return nil, SnapshotInfo{}, fmt.Errorf("querying majors: %w", err)
	}
	defer rows.Close()

	majors := make([]catalog.MajorProfile, 0, info.Majors)
	for rows.Next() {
		var (
			m               catalog.MajorProfile
			streams, skills string
		)
		a := &m.Affinity
		if err := rows.Scan(&m.Name, &m.Description,
			&a[vector.LogicMath], &a[vector.Verbal], &a[vector.Social], &a[vector.Art], &a[vector.Science],
			&streams, &skills, &m.Prospects,
		); err != nil {
			return nil, SnapshotInfo{}, fmt.Errorf("scanning major: %w", err)
		}
		if m.Streams, err = decodeList(streams); err != nil {
			return nil, SnapshotInfo{}, err
		}
		if m.Skills, err = decodeList(skills); err != nil {
			return nil, SnapshotInfo{}, err
		}
		majors = append(majors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, SnapshotInfo{}, err
	}

	return majors, info, nil
}

func encodeList(items []string) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(data), nil
}

func decodeList(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

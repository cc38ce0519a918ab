package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/vector"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleMajors() []catalog.MajorProfile {
	return []catalog.MajorProfile{
		{
			Name:        "Teknik Informatika",
			Description: "Teknik informatika mempelajari algoritma.",
			Affinity:    vector.Vector{1, 0.1, 0.1, 0.1, 0.7},
			Streams:     []string{"science"},
			Skills:      []string{"Programming", "Logika"},
			Prospects:   "Sangat Tinggi",
		},
		{
			Name:        "Desain Komunikasi Visual",
			Description: "Desain.",
			Affinity:    vector.Vector{0.1, 0.8, 0.8, 1, 0.1},
		},
	}
}

func TestLoadSnapshotEmpty(t *testing.T) {
	s := openTestStore(t)

	_, _, err := s.LoadSnapshot(context.Background())
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveSnapshot(ctx, sampleMajors())
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	majors, info, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if diff := cmp.Diff(sampleMajors(), majors); diff != "" {
		t.Fatalf("unexpected majors (-want +got):\n%s", diff)
	}
	if info.ID != saved.ID || info.Majors != 2 || !info.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatalf("unexpected snapshot info: %+v vs %+v", info, saved)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveSnapshot(ctx, sampleMajors()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := s.SaveSnapshot(ctx, sampleMajors()[1:])
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	majors, info, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if info.ID != second.ID {
		t.Fatalf("expected latest snapshot %s, got %s", second.ID, info.ID)
	}
	if len(majors) != 1 || majors[0].Name != "Desain Komunikasi Visual" {
		t.Fatalf("unexpected majors after replace: %+v", majors)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "catalog.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if _, err := s1.SaveSnapshot(context.Background(), sampleMajors()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	var versions int
	if err := s2.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&versions); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if versions != 1 {
		t.Fatalf("expected 1 applied migration, got %d", versions)
	}

	majors, _, err := s2.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot after reopen: %v", err)
	}
	if len(majors) != 2 {
		t.Fatalf("expected snapshot to survive reopen, got %d majors", len(majors))
	}
}

func TestParseMigrationVersion(t *testing.T) {
	if v, err := parseMigrationVersion("007_add.sql"); err != nil || v != 7 {
		t.Fatalf("unexpected result: %d, %v", v, err)
	}
	if _, err := parseMigrationVersion("add.sql"); err == nil {
		t.Fatal("expected error for missing prefix")
	}
}

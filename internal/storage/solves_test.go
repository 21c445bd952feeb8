package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetSolve(t *testing.T) {
	repo := NewSolveRepository(testDB(t))

	id, err := repo.Create("R U2 F'", "F U2 R'", 3, 2, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("creating solve: %v", err)
	}
	if id == "" {
		t.Fatal("created solve should have an ID")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("getting solve: %v", err)
	}
	if got.SolveID != id {
		t.Errorf("ID mismatch: %q vs %q", got.SolveID, id)
	}
	if got.Scramble != "R U2 F'" || got.Solution != "F U2 R'" {
		t.Errorf("stored moves mismatch: %q / %q", got.Scramble, got.Solution)
	}
	if got.MoveCount != 3 || got.Phase1Len != 2 {
		t.Errorf("stored counts mismatch: %d / %d", got.MoveCount, got.Phase1Len)
	}
	if got.DurationMs != 150 {
		t.Errorf("stored duration mismatch: %d", got.DurationMs)
	}
	if got.CreatedAt.IsZero() {
		t.Error("stored timestamp should not be zero")
	}
}

func TestGetMissingSolve(t *testing.T) {
	repo := NewSolveRepository(testDB(t))
	if _, err := repo.Get("no-such-id"); err == nil {
		t.Error("getting a missing solve should fail")
	}
}

func TestListSolves(t *testing.T) {
	repo := NewSolveRepository(testDB(t))

	for i := 0; i < 5; i++ {
		if _, err := repo.Create("R U", "U' R'", 2, 1, time.Millisecond); err != nil {
			t.Fatalf("creating solve %d: %v", i, err)
		}
	}

	solves, err := repo.List(3)
	if err != nil {
		t.Fatalf("listing solves: %v", err)
	}
	if len(solves) != 3 {
		t.Errorf("expected 3 solves, got %d", len(solves))
	}

	all, err := repo.List(100)
	if err != nil {
		t.Fatalf("listing solves: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 solves, got %d", len(all))
	}
}

func TestListEmptyDatabase(t *testing.T) {
	repo := NewSolveRepository(testDB(t))
	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("listing solves: %v", err)
	}
	if len(solves) != 0 {
		t.Errorf("fresh database should have no solves, got %d", len(solves))
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	db.Close()
}

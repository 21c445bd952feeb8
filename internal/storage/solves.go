package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is a recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Scramble   string
	Solution   string
	MoveCount  int
	Phase1Len  int
	DurationMs int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve and returns its ID.
func (r *SolveRepository) Create(scramble, solution string, moveCount, phase1Len int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, move_count, phase1_len, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), scramble, solution, moveCount, phase1Len, duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get returns a solve by ID.
func (r *SolveRepository) Get(id string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, move_count, phase1_len, duration_ms
		FROM solves WHERE solve_id = ?
	`, id)
	return scanSolve(row)
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]*Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, move_count, phase1_len, duration_ms
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(&s.SolveID, &createdAt, &s.Scramble, &s.Solution, &s.MoveCount, &s.Phase1Len, &s.DurationMs)
	if err != nil {
		return nil, fmt.Errorf("failed to scan solve: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	return &s, nil
}

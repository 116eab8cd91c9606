package historystore

import (
	"context"
	"database/sql"
	"time"
)

// RunRecord is a persisted summary of one completed Solve call (spec §3.1).
type RunRecord struct {
	ID              string
	GuessesPath     string
	SolutionsPath   string
	NumValidGuesses int
	NumSolutions    int
	PruneLimit      int
	SolvedCount     int
	UnsolvedCount   int
	AverageGuesses  float64
	DurationMS      int64
	CreatedAt       time.Time
}

// InsertRun records a completed run. Called once per successful Solve,
// never on failure — a failed construction never reaches the engine.
func (s *Store) InsertRun(ctx context.Context, r RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_records
			(id, guesses_path, solutions_path, num_valid_guesses, num_solutions,
			 prune_limit, solved_count, unsolved_count, average_guesses, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GuessesPath, r.SolutionsPath, r.NumValidGuesses, r.NumSolutions,
		r.PruneLimit, r.SolvedCount, r.UnsolvedCount, r.AverageGuesses, r.DurationMS,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListRuns returns the most recent runs, newest first, capped at limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, guesses_path, solutions_path, num_valid_guesses, num_solutions,
		       prune_limit, solved_count, unsolved_count, average_guesses, duration_ms, created_at
		FROM run_records
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunRecord, 0, limit)
	for rows.Next() {
		var r RunRecord
		var created string
		if err := rows.Scan(&r.ID, &r.GuessesPath, &r.SolutionsPath, &r.NumValidGuesses,
			&r.NumSolutions, &r.PruneLimit, &r.SolvedCount, &r.UnsolvedCount,
			&r.AverageGuesses, &r.DurationMS, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Admin is the single configured administrative account gating the HTTP
// API's mutating endpoints.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// FindAdminByUsername loads an admin row by username, or sql.ErrNoRows
// if none exists.
func (s *Store) FindAdminByUsername(ctx context.Context, username string) (*Admin, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`, username)
	var a Admin
	var created string
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &created); err != nil {
		return nil, err
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &a, nil
}

// EnsureAdmin creates the configured admin account if it does not already
// exist, leaving any existing row (and its password) untouched.
func (s *Store) EnsureAdmin(ctx context.Context, id, username, passwordHash string) error {
	_, err := s.FindAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id, username, passwordHash, time.Now().UTC().Format(time.RFC3339))
	return err
}

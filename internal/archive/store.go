// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps parsed meal plans in a SQLite database so an earlier
// week can be listed and rendered again without its source file.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

const (
	dbFile = "mealplans.db"
	// timeFormat is fixed width so created_at sorts lexically.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned when no archived plan has the requested ID.
var ErrNotFound = errors.New("plan not found")

// Store manages the archive SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// Summary describes an archived plan without its meals.
type Summary struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Source    string    `json:"source" yaml:"source"`
	Days      int       `json:"days" yaml:"days"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Entry is an archived plan with its meals.
type Entry struct {
	Summary
	Plan types.MealPlan `json:"-" yaml:"-"`
}

// NewStore opens or creates the archive database at cfg.Dir/mealplans.db
// and creates the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "archive"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dbFile)
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meals (
			plan_id TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
			day INTEGER NOT NULL,
			slot INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (plan_id, day, slot)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores plan under a new ID and returns it. Every day in the plan is
// stored with all six slots, empty ones included, so Get returns the same
// set of days.
func (s *Store) Save(ctx context.Context, name, source string, plan types.MealPlan) (string, error) {
	id := uuid.NewString()
	created := time.Now().UTC().Format(timeFormat)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO plans (id, name, source, created_at) VALUES (?, ?, ?, ?)`,
		id, name, source, created,
	); err != nil {
		return "", fmt.Errorf("inserting plan: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO meals (plan_id, day, slot, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing meal insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range plan.Days() {
		meals := plan[d]
		for _, slot := range types.Slots() {
			if _, err := stmt.ExecContext(ctx, id, int(d), int(slot), meals[slot]); err != nil {
				return "", fmt.Errorf("inserting %s %s: %w", d, slot, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing plan: %w", err)
	}
	return id, nil
}

// Get returns the archived plan with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	var (
		e       Entry
		created string
		source  sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, source, created_at FROM plans WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &source, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("querying plan %s: %w", id, err)
	}
	e.Source = source.String
	e.CreatedAt, _ = time.Parse(timeFormat, created)

	rows, err := s.db.QueryContext(ctx,
		`SELECT day, slot, text FROM meals WHERE plan_id = ?`, id)
	if err != nil {
		return Entry{}, fmt.Errorf("querying meals for %s: %w", id, err)
	}
	defer rows.Close()

	e.Plan = make(types.MealPlan)
	for rows.Next() {
		var day, slot int
		var text string
		if err := rows.Scan(&day, &slot, &text); err != nil {
			return Entry{}, fmt.Errorf("scanning meal: %w", err)
		}
		d := types.Day(day)
		if !d.Valid() || slot < 0 || slot >= types.NumSlots {
			continue
		}
		meals := e.Plan[d]
		meals[slot] = text
		e.Plan[d] = meals
	}
	if err := rows.Err(); err != nil {
		return Entry{}, fmt.Errorf("reading meals for %s: %w", id, err)
	}
	e.Days = len(e.Plan)
	return e, nil
}

// List returns summaries of all archived plans, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.source, p.created_at,
			(SELECT COUNT(DISTINCT m.day) FROM meals m WHERE m.plan_id = p.id)
		FROM plans p
		ORDER BY p.created_at DESC, p.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			source  sql.NullString
			created string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &source, &created, &sum.Days); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		sum.Source = source.String
		sum.CreatedAt, _ = time.Parse(timeFormat, created)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the plan with the given ID and its meals.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import (
	"bonus-route-planner/internal/adapters/ingest"
	"bonus-route-planner/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the placeholder syntax of the target database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// bind returns the n-th (1-based) bind parameter for the dialect.
func (d Dialect) bind(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) binds(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = d.bind(i + 1)
	}
	return strings.Join(ph, ", ")
}

// Initialize the database schema. The DDL is shared by SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEdgesQuery := `
	CREATE TABLE IF NOT EXISTS edges (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		travel_time DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createTasksQuery := `
	CREATE TABLE IF NOT EXISTS tasks (
		task_id INTEGER PRIMARY KEY,
		deadline DOUBLE PRECISION NOT NULL,
		destination TEXT NOT NULL,
		bonus DOUBLE PRECISION NOT NULL
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		fingerprint TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		travel_time DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (fingerprint, origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_tasks_deadline
	ON tasks(deadline, task_id);
	`

	statements := []string{
		createEdgesQuery,
		createTasksQuery,
		createDistanceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromCSV replaces the stored edges and tasks with the contents of the
// two CSV files.
func SeedFromCSV(ctx context.Context, db *sql.DB, d Dialect, edgesPath, tasksPath string) error {
	edges, err := ingest.ReadEdgesFile(edgesPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	tasks, err := ingest.ReadTasksFile(tasksPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return Seed(ctx, db, d, edges, tasks)
}

// Seed replaces the stored edges and tasks in a single transaction. A
// repeated (origin, destination) pair keeps the last travel time.
func Seed(ctx context.Context, db *sql.DB, d Dialect, edges []domain.Edge, tasks []domain.DeliveryTask) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	for i, e := range edges {
		if strings.TrimSpace(string(e.From)) == "" || strings.TrimSpace(string(e.To)) == "" {
			return fmt.Errorf("seed: edge at index %d: endpoints cannot be empty", i)
		}
		if !(e.TravelTime > 0) {
			return fmt.Errorf("seed: edge %s->%s: %w", e.From, e.To, domain.ErrInvalidEdgeWeight)
		}
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed: task_id=%d: %w", t.ID, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM edges;`, `DELETE FROM tasks;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed: clear tables: %w", err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO edges (origin, destination, travel_time)
	VALUES (%s)
	ON CONFLICT (origin, destination) DO UPDATE
	SET travel_time = excluded.travel_time;
	`, d.binds(3)))
	if err != nil {
		return fmt.Errorf("seed: prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range edges {
		from := strings.TrimSpace(string(e.From))
		to := strings.TrimSpace(string(e.To))
		if _, err := edgeStmt.ExecContext(ctx, from, to, e.TravelTime); err != nil {
			return fmt.Errorf("seed: insert edge %s->%s: %w", from, to, err)
		}
	}

	taskStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO tasks (task_id, deadline, destination, bonus)
	VALUES (%s);
	`, d.binds(4)))
	if err != nil {
		return fmt.Errorf("seed: prepare task insert: %w", err)
	}
	defer taskStmt.Close()

	for _, t := range tasks {
		if _, err := taskStmt.ExecContext(ctx, t.ID, t.Deadline, strings.TrimSpace(string(t.Destination)), t.Bonus); err != nil {
			return fmt.Errorf("seed: insert task_id=%d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

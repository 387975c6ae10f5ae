package repositories

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the NetworkRepository and TaskRepository ports.
type SqliteRepository struct{ DB *sql.DB }

func NewSqliteRepository(db *sql.DB) *SqliteRepository {
	return &SqliteRepository{DB: db}
}

func (s *SqliteRepository) ListEdges(ctx context.Context) ([]domain.Edge, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite repository: DB is nil")
	}
	return listEdges(ctx, s.DB)
}

func (s *SqliteRepository) ListTasks(ctx context.Context) ([]domain.DeliveryTask, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite repository: DB is nil")
	}
	return listTasks(ctx, s.DB)
}

// SQLRepository is the Postgres-backed variant, opened through the pgx
// database/sql driver.
type SQLRepository struct{ DB *sql.DB }

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (s *SQLRepository) ListEdges(ctx context.Context) (_ []domain.Edge, err error) {
	defer obs.Time(ctx, "repository.ListEdges")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}
	return listEdges(ctx, s.DB)
}

func (s *SQLRepository) ListTasks(ctx context.Context) (_ []domain.DeliveryTask, err error) {
	defer obs.Time(ctx, "repository.ListTasks")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}
	return listTasks(ctx, s.DB)
}

func listEdges(ctx context.Context, db *sql.DB) ([]domain.Edge, error) {
	query := `
	SELECT
		origin,
		destination,
		travel_time
	FROM edges
	ORDER BY origin, destination;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list edges: query edges table: %w", err)
	}
	defer rows.Close()

	edges := make([]domain.Edge, 0, 64)
	for rows.Next() {
		var from, to string
		var w float64
		if err := rows.Scan(&from, &to, &w); err != nil {
			return nil, fmt.Errorf("list edges: scan row: %w", err)
		}
		edges = append(edges, domain.Edge{From: domain.Location(from), To: domain.Location(to), TravelTime: w})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list edges: row iteration: %w", err)
	}

	return edges, nil
}

func listTasks(ctx context.Context, db *sql.DB) ([]domain.DeliveryTask, error) {
	query := `
	SELECT
		task_id,
		deadline,
		destination,
		bonus
	FROM tasks
	ORDER BY deadline, task_id;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: query tasks table: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.DeliveryTask, 0, 64)
	for rows.Next() {
		var t domain.DeliveryTask
		var dest string
		if err := rows.Scan(&t.ID, &t.Deadline, &dest, &t.Bonus); err != nil {
			return nil, fmt.Errorf("list tasks: scan row: %w", err)
		}
		t.Destination = domain.Location(dest)
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: row iteration: %w", err)
	}

	return tasks, nil
}

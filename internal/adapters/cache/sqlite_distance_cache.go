package cache

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache for shortest-path rows, keyed by network fingerprint.
type SqliteDistanceCache struct {
	DB *sql.DB
}

func NewSqliteDistanceCache(db *sql.DB) *SqliteDistanceCache {
	return &SqliteDistanceCache{DB: db}
}

// Fetch cached rows for the given origins.
func (s *SqliteDistanceCache) GetRows(
	ctx context.Context,
	fingerprint string,
	origins []domain.Location,
) (map[domain.Location]ports.DistanceRow, error) {
	if s.DB == nil {
		return nil, errors.New("distance cache: db is nil")
	}
	if err := checkFingerprint(fingerprint); err != nil {
		return nil, fmt.Errorf("get distance cache: %w", err)
	}

	uniq := uniqueOrigins(origins)
	if len(uniq) == 0 {
		return map[domain.Location]ports.DistanceRow{}, nil
	}

	ph := make([]string, len(uniq))
	args := make([]any, 0, 1+len(uniq))
	args = append(args, fingerprint)
	for i, o := range uniq {
		ph[i] = "?"
		args = append(args, o)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		origin,
		destination,
		travel_time
	FROM distance_cache
	WHERE fingerprint = ?
		AND origin IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.Location]ports.DistanceRow, len(uniq))
	for rows.Next() {
		var origin, dest string
		var t float64
		if err := rows.Scan(&origin, &dest, &t); err != nil {
			return nil, fmt.Errorf("get distance cache: scan rows: %w", err)
		}
		addEntry(out, origin, dest, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distance cache: row iteration: %w", err)
	}

	return out, nil
}

// Store rows for a fingerprint.
func (s *SqliteDistanceCache) PutRows(
	ctx context.Context,
	fingerprint string,
	rows map[domain.Location]ports.DistanceRow,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}
	if err := checkFingerprint(fingerprint); err != nil {
		return fmt.Errorf("insert distance cache: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert distance cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO distance_cache (
		fingerprint,
		origin,
		destination,
		travel_time
	)
	VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert distance cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for origin, row := range rows {
		if strings.TrimSpace(string(origin)) == "" {
			return errors.New("insert distance cache: empty origin key")
		}
		for dest, t := range row {
			if _, err := stmt.ExecContext(ctx, fingerprint, string(origin), string(dest), t); err != nil {
				return fmt.Errorf("insert distance cache origin=%q dest=%q: %w", origin, dest, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert distance cache commit: %w", err)
	}

	return nil
}

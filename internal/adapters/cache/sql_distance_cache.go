package cache

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/platform/obs"
	"bonus-route-planner/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLDistanceCache is a Postgres-backed cache for shortest-path rows.
type SQLDistanceCache struct {
	DB *sql.DB
}

func NewSQLDistanceCache(db *sql.DB) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db}
}

// Fetch cached rows for the given origins.
func (s *SQLDistanceCache) GetRows(
	ctx context.Context,
	fingerprint string,
	origins []domain.Location,
) (_ map[domain.Location]ports.DistanceRow, err error) {
	defer obs.Time(ctx, "distance.cache.GetRows")(&err)

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

	q := `
	SELECT origin, destination, travel_time
	FROM distance_cache
	WHERE fingerprint = $1
		AND origin = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, fingerprint, uniq)
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
func (s *SQLDistanceCache) PutRows(
	ctx context.Context,
	fingerprint string,
	rows map[domain.Location]ports.DistanceRow,
) (err error) {
	defer obs.Time(ctx, "distance.cache.PutRows")(&err)

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
	INSERT INTO distance_cache (fingerprint, origin, destination, travel_time)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (fingerprint, origin, destination) DO UPDATE
	SET travel_time = EXCLUDED.travel_time;
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

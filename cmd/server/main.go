package main

import (
	"bonus-route-planner/internal/adapters/cache"
	"bonus-route-planner/internal/adapters/repositories"
	"bonus-route-planner/internal/api"
	"bonus-route-planner/internal/config"
	"bonus-route-planner/internal/platform/db"
	"bonus-route-planner/internal/ports"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

type repository interface {
	ports.NetworkRepository
	ports.TaskRepository
}

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	defaults, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", "8080")
	ctx := context.Background()

	conn, repo, distCache, err := openStorage(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// A Redis cache, when configured, replaces the database-backed one.
	if redisURL := config.Get("REDIS_URL", ""); redisURL != "" {
		ttl, err := time.ParseDuration(config.Get("REDIS_TTL", cache.DefaultRedisTTL.String()))
		if err != nil {
			log.Fatalf("REDIS_TTL: %v", err)
		}
		rc, err := cache.NewRedisDistanceCacheFromURL(redisURL, ttl)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		distCache = rc
	}

	router := api.NewRouter(api.Deps{
		Edges:                repo,
		Tasks:                repo,
		Cache:                distCache,
		DefaultDepot:         defaults.Depot,
		DefaultStrategy:      defaults.Strategy,
		DefaultMaxExpansions: defaults.MaxExpansions,
	})

	// Large catalogs can keep the exhaustive search busy for a while.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStorage picks Postgres when DATABASE_URL is set and a local SQLite
// file otherwise. The SQLite schema is created and, when seed files are
// configured, loaded on startup for local runs.
func openStorage(ctx context.Context) (*sql.DB, repository, ports.DistanceCache, error) {
	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err := db.Open(ctx, url)
		if err != nil {
			return nil, nil, nil, err
		}
		return conn, repositories.NewSQLRepository(conn), cache.NewSQLDistanceCache(conn), nil
	}

	conn, err := db.OpenSQLite(ctx, config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		return nil, nil, nil, err
	}
	if err := initAndSeed(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, nil, err
	}
	return conn, repositories.NewSqliteRepository(conn), cache.NewSqliteDistanceCache(conn), nil
}

func initAndSeed(ctx context.Context, conn *sql.DB) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	edgesPath := config.Get("SEED_EDGES", "")
	tasksPath := config.Get("SEED_TASKS", "")
	if edgesPath == "" || tasksPath == "" {
		return nil
	}

	if err := repositories.SeedFromCSV(ctx, conn, repositories.SQLite, edgesPath, tasksPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

package main

import (
	"bonus-route-planner/internal/adapters/repositories"
	"bonus-route-planner/internal/config"
	"bonus-route-planner/internal/platform/db"
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
)

// dbtool creates the schema and loads the edge and task CSV files into the
// database the server reads from.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	edgesPath := flag.String("edges", config.Get("SEED_EDGES", "data/conexoes.txt"), "edges CSV (origin,destination,time)")
	tasksPath := flag.String("tasks", config.Get("SEED_TASKS", "data/entregas.txt"), "tasks CSV (minute,destination,bonus)")
	schemaOnly := flag.Bool("schema-only", false, "create the schema without seeding")
	flag.Parse()

	ctx := context.Background()

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)
	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err = db.Open(ctx, url)
		dialect = repositories.Postgres
	} else {
		conn, err = db.OpenSQLite(ctx, config.Get("DB_PATH", "data/app.db"))
		dialect = repositories.SQLite
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *schemaOnly {
		return
	}

	log.Println("Seeding database...")
	if err := repositories.SeedFromCSV(ctx, conn, dialect, *edgesPath, *tasksPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

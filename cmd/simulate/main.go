package main

import (
	"bonus-route-planner/internal/adapters/ingest"
	"bonus-route-planner/internal/catalog"
	"bonus-route-planner/internal/config"
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/network"
	"bonus-route-planner/internal/report"
	"bonus-route-planner/internal/services"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

// simulate runs both strategies over the CSV files and prints the summary.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	defaults, err := config.Load()
	if err != nil {
		return err
	}
	if defaults.Depot == "" {
		defaults.Depot = "A"
	}

	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	edgesPath := fs.String("edges", config.Get("SEED_EDGES", "data/conexoes.txt"), "edges CSV (origin,destination,time)")
	tasksPath := fs.String("tasks", config.Get("SEED_TASKS", "data/entregas.txt"), "tasks CSV (minute,destination,bonus)")
	depot := fs.String("depot", defaults.Depot, "depot location")
	strategy := fs.String("strategy", defaults.Strategy, "basic or optimized; empty runs both")
	maxExp := fs.Int("max-expansions", defaults.MaxExpansions, "search states per round (0 = default)")
	carryClock := fs.Bool("carry-clock", false, "start each round when the previous route returns to the depot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	edges, err := ingest.ReadEdgesFile(*edgesPath)
	if err != nil {
		return err
	}
	tasks, err := ingest.ReadTasksFile(*tasksPath)
	if err != nil {
		return err
	}

	net, err := network.New(edges)
	if err != nil {
		return err
	}
	if !net.HasLocation(domain.Location(*depot)) {
		return fmt.Errorf("simulate: depot %q is not a location of the network", *depot)
	}
	cat, err := catalog.New(tasks)
	if err != nil {
		return err
	}
	log.Printf("loaded locations=%d tasks=%d bonus=%g", len(net.Locations()), cat.Len(), cat.TotalBonus())
	opts := services.RouterOptions{MaxExpansions: *maxExp}

	if *strategy != "" {
		router, err := services.NewRouter(*strategy, opts)
		if err != nil {
			return err
		}
		res, err := services.Simulate(ctx, services.SimulationRequest{
			Network:    net,
			Catalog:    cat,
			Depot:      domain.Location(*depot),
			Router:     router,
			CarryClock: *carryClock,
		})
		if err != nil {
			return err
		}
		return report.WriteSimulation(stdout, res)
	}

	if *carryClock {
		log.Println("-carry-clock applies to single-strategy runs; comparing with rounds starting at zero")
	}
	cmp, err := services.CompareStrategies(ctx, net, cat, domain.Location(*depot), opts)
	if err != nil {
		return err
	}
	return report.WriteComparison(stdout, cmp)
}

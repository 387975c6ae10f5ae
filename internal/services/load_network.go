package services

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/metrics"
	"bonus-route-planner/internal/network"
	"bonus-route-planner/internal/platform/obs"
	"bonus-route-planner/internal/ports"
	"context"
	"fmt"
	"log"
	"strings"
)

// LoadNetwork reads the edges from repo and builds the network.
//
// When cache is non-nil, shortest-path rows already computed for the same
// edge set are reused and newly computed rows are written back. Cache errors
// are logged and never fail the load; the table is simply recomputed.
func LoadNetwork(
	ctx context.Context,
	repo ports.NetworkRepository,
	cache ports.DistanceCache,
) (_ *network.Network, err error) {
	defer obs.Time(ctx, "network.load")(&err)

	edges, err := repo.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load network: list edges: %w", err)
	}

	if cache == nil {
		net, err := network.New(edges)
		if err != nil {
			return nil, fmt.Errorf("load network: %w", err)
		}
		return net, nil
	}

	fp, err := network.FingerprintOf(edges)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	seen := make(map[domain.Location]struct{}, len(edges)*2)
	origins := make([]domain.Location, 0, len(edges)*2)
	for _, e := range edges {
		for _, loc := range []domain.Location{e.From, e.To} {
			loc = domain.Location(strings.TrimSpace(string(loc)))
			if _, ok := seen[loc]; ok {
				continue
			}
			seen[loc] = struct{}{}
			origins = append(origins, loc)
		}
	}

	seed := map[domain.Location]map[domain.Location]float64{}
	cached, cerr := cache.GetRows(ctx, fp, origins)
	if cerr != nil {
		log.Printf("req_id=%s op=network.load fingerprint=%s cache read failed: %v", obs.RequestID(ctx), fp, cerr)
	}
	for origin, row := range cached {
		seed[origin] = row
	}

	net, err := network.New(edges, network.WithDistanceRows(seed))
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	computed := net.ComputedOrigins()
	metrics.DistanceCacheLookups.WithLabelValues("hit").Add(float64(len(net.Locations()) - len(computed)))
	metrics.DistanceCacheLookups.WithLabelValues("miss").Add(float64(len(computed)))

	if len(computed) == 0 {
		return net, nil
	}

	fresh := make(map[domain.Location]ports.DistanceRow, len(computed))
	for _, origin := range computed {
		fresh[origin] = net.Row(origin)
	}
	if perr := cache.PutRows(ctx, fp, fresh); perr != nil {
		log.Printf("req_id=%s op=network.load fingerprint=%s cache write failed: %v", obs.RequestID(ctx), fp, perr)
	}

	return net, nil
}

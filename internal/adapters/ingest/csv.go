// Package ingest reads the flat-file formats the planner is fed with:
// headerless CSV rows of "origin,destination,time" for network edges and
// "minute,destination,bonus" for delivery tasks.
package ingest

import (
	"bonus-route-planner/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ReadEdges parses edge rows. Values are trimmed; weights are validated later
// by the network constructor.
func ReadEdges(r io.Reader) ([]domain.Edge, error) {
	var edges []domain.Edge
	err := readRows(r, func(line int, rec []string) error {
		w, err := parseNumber(rec[2])
		if err != nil {
			return fmt.Errorf("line %d: time: %w", line, err)
		}
		edges = append(edges, domain.Edge{
			From:       domain.Location(rec[0]),
			To:         domain.Location(rec[1]),
			TravelTime: w,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}
	return edges, nil
}

// ReadTasks parses task rows and returns them sorted by deadline, keeping the
// file order among equal deadlines. Tasks are numbered by their line.
func ReadTasks(r io.Reader) ([]domain.DeliveryTask, error) {
	var tasks []domain.DeliveryTask
	err := readRows(r, func(line int, rec []string) error {
		minute, err := parseNumber(rec[0])
		if err != nil {
			return fmt.Errorf("line %d: minute: %w", line, err)
		}
		bonus, err := parseNumber(rec[2])
		if err != nil {
			return fmt.Errorf("line %d: bonus: %w", line, err)
		}
		tasks = append(tasks, domain.DeliveryTask{
			ID:          line,
			Deadline:    minute,
			Destination: domain.Location(rec[1]),
			Bonus:       bonus,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	slices.SortStableFunc(tasks, func(a, b domain.DeliveryTask) int {
		switch {
		case a.Deadline < b.Deadline:
			return -1
		case a.Deadline > b.Deadline:
			return 1
		}
		return 0
	})
	return tasks, nil
}

// ReadEdgesFile opens path and parses it with ReadEdges.
func ReadEdgesFile(path string) ([]domain.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read edges: open %q: %w", path, err)
	}
	defer f.Close()
	return ReadEdges(f)
}

// ReadTasksFile opens path and parses it with ReadTasks.
func ReadTasksFile(path string) ([]domain.DeliveryTask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks: open %q: %w", path, err)
	}
	defer f.Close()
	return ReadTasks(f)
}

func readRows(r io.Reader, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

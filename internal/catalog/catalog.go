// Package catalog tracks the delivery tasks that are still pending.
package catalog

import (
	"bonus-route-planner/internal/domain"
	"cmp"
	"fmt"
	"slices"
)

// Catalog is the mutable set of pending delivery tasks.
// Iteration order is deterministic: deadline ascending, then task ID.
// A Catalog is not safe for concurrent mutation; use Snapshot to hand an
// independent copy to another goroutine.
type Catalog struct {
	tasks []domain.DeliveryTask
}

// New validates tasks and assigns IDs to those without one (ID == 0),
// continuing after the highest ID supplied.
func New(tasks []domain.DeliveryTask) (*Catalog, error) {
	maxID := 0
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("new catalog: %w", err)
		}
		if t.ID == 0 {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("new catalog: %w: duplicate task id %d", domain.ErrInvalidTask, t.ID)
		}
		seen[t.ID] = struct{}{}
		maxID = max(maxID, t.ID)
	}

	out := make([]domain.DeliveryTask, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 {
			maxID++
			t.ID = maxID
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, func(a, b domain.DeliveryTask) int {
		if c := cmp.Compare(a.Deadline, b.Deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return &Catalog{tasks: out}, nil
}

// Remaining returns a copy of the pending tasks.
func (c *Catalog) Remaining() []domain.DeliveryTask {
	return slices.Clone(c.tasks)
}

// Remove drops the tasks with the given IDs and returns how many were removed.
// Other tasks addressed to the same destination are kept.
func (c *Catalog) Remove(ids ...int) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	before := len(c.tasks)
	c.tasks = slices.DeleteFunc(c.tasks, func(t domain.DeliveryTask) bool {
		_, ok := drop[t.ID]
		return ok
	})
	return before - len(c.tasks)
}

// Snapshot returns an independent copy of the catalog.
func (c *Catalog) Snapshot() *Catalog {
	return &Catalog{tasks: slices.Clone(c.tasks)}
}

func (c *Catalog) Len() int { return len(c.tasks) }

// TotalBonus is the sum of bonuses of all pending tasks.
func (c *Catalog) TotalBonus() float64 {
	total := 0.0
	for _, t := range c.tasks {
		total += t.Bonus
	}
	return total
}

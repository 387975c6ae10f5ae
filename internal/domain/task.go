package domain

import (
	"fmt"
	"math"
	"strings"
)

// Represents a single delivery opportunity.
// The bonus is collected only if the agent reaches Destination by Deadline
// (minutes from simulation start). ID is the identity used when a task is
// consumed, so two tasks may share a destination and still be distinct.
type DeliveryTask struct {
	ID          int
	Deadline    float64
	Destination Location
	Bonus       float64
}

// Validate reports ErrInvalidTask for tasks the router cannot reason about.
func (t DeliveryTask) Validate() error {
	if strings.TrimSpace(string(t.Destination)) == "" {
		return fmt.Errorf("%w: task %d has empty destination", ErrInvalidTask, t.ID)
	}
	if math.IsNaN(t.Deadline) || math.IsInf(t.Deadline, 0) || t.Deadline < 0 {
		return fmt.Errorf("%w: task %d deadline=%v must be finite and non-negative", ErrInvalidTask, t.ID, t.Deadline)
	}
	if math.IsNaN(t.Bonus) || math.IsInf(t.Bonus, 0) || t.Bonus < 0 {
		return fmt.Errorf("%w: task %d bonus=%v must be non-negative", ErrInvalidTask, t.ID, t.Bonus)
	}
	if t.ID < 0 {
		return fmt.Errorf("%w: task id %d must not be negative", ErrInvalidTask, t.ID)
	}
	return nil
}

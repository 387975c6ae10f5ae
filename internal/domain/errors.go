package domain

import "errors"

var (
	// ErrInvalidEdgeWeight is returned when an edge has a non-positive travel time.
	ErrInvalidEdgeWeight = errors.New("invalid edge weight")

	// ErrInvalidTask is returned for tasks with a negative bonus or deadline.
	ErrInvalidTask = errors.New("invalid task")

	// ErrSearchBudgetExceeded is returned when a router pops more states than allowed.
	ErrSearchBudgetExceeded = errors.New("search budget exceeded")

	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrEmptyDepot      = errors.New("depot must be non-empty")
)

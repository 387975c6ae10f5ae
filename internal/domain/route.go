package domain

// Represents one completed delivery inside a route.
// Time is the arrival time at Destination, in minutes from simulation start.
type Delivery struct {
	TaskID      int
	Time        float64
	Destination Location
	Bonus       float64
}

// Represents the output of a single router invocation.
// Deliveries are ordered by arrival and never repeat a destination.
// Elapsed is the clock value once the agent is back at the depot.
// It is immutable planning data and contains no side effects.
type RouteResult struct {
	Bonus      float64
	Deliveries []Delivery
	Elapsed    float64
}

// Empty reports whether the route delivers nothing.
func (r RouteResult) Empty() bool { return len(r.Deliveries) == 0 }

// TaskIDs returns the identities of the tasks fulfilled by the route.
func (r RouteResult) TaskIDs() []int {
	ids := make([]int, 0, len(r.Deliveries))
	for _, d := range r.Deliveries {
		ids = append(ids, d.TaskID)
	}
	return ids
}

package domain

// Aggregated outcome of a simulation run with one strategy.
type SimulationResult struct {
	RunID         string
	Strategy      string
	Deliveries    []Delivery
	DeliveryCount int
	TotalElapsed  float64
	TotalBonus    float64
	Rounds        int
}

package dto

type SimulationRequest struct {
	Depot         string `json:"depot"`
	Strategy      string `json:"strategy"`
	MaxExpansions int    `json:"max_expansions"`
}

type DeliveryResponse struct {
	TaskID      int     `json:"task_id"`
	Time        float64 `json:"time"`
	Destination string  `json:"destination"`
	Bonus       float64 `json:"bonus"`
}

type SimulationResponse struct {
	RunID         string             `json:"run_id"`
	Strategy      string             `json:"strategy"`
	Deliveries    []DeliveryResponse `json:"deliveries"`
	DeliveryCount int                `json:"delivery_count"`
	TotalElapsed  float64            `json:"total_elapsed"`
	TotalBonus    float64            `json:"total_bonus"`
	Rounds        int                `json:"rounds"`
}

type ChartPointResponse struct {
	Label   string  `json:"label"`
	Elapsed float64 `json:"elapsed"`
	Bonus   float64 `json:"bonus"`
}

type ComparisonResponse struct {
	Basic     SimulationResponse   `json:"basic"`
	Optimized SimulationResponse   `json:"optimized"`
	Points    []ChartPointResponse `json:"points"`
}

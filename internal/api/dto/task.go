package dto

type TaskResponse struct {
	TaskID      int     `json:"task_id"`
	Deadline    float64 `json:"deadline"`
	Destination string  `json:"destination"`
	Bonus       float64 `json:"bonus"`
}

type ListTasksResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalBonus float64        `json:"total_bonus"`
}

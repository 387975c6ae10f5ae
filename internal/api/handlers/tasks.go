package handlers

import (
	"bonus-route-planner/internal/api/dto"
	"bonus-route-planner/internal/catalog"
	"bonus-route-planner/internal/platform/obs"
	"bonus-route-planner/internal/ports"
	"log"
	"net/http"
)

// TaskHandler exposes the stored delivery tasks.
type TaskHandler struct {
	Repo ports.TaskRepository
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tasks, err := h.Repo.ListTasks(r.Context())
	if err != nil {
		log.Printf("req_id=%s list tasks failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	cat, err := catalog.New(tasks)
	if err != nil {
		log.Printf("req_id=%s list tasks: stored tasks are invalid: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	pending := cat.Remaining()
	res := dto.ListTasksResponse{
		Tasks:      make([]dto.TaskResponse, 0, len(pending)),
		TotalBonus: cat.TotalBonus(),
	}
	for _, t := range pending {
		res.Tasks = append(res.Tasks, dto.TaskResponse{
			TaskID:      t.ID,
			Deadline:    t.Deadline,
			Destination: string(t.Destination),
			Bonus:       t.Bonus,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

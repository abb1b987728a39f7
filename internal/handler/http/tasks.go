package http

import (
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.services.RecordService.ListTasks(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, r, err, "error listing tasks")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := decodeJSON(r, &task); err != nil {
		writeError(w, r, err, "error decoding task")
		return
	}

	created, err := h.services.RecordService.AddTask(r.Context(), task)
	if err != nil {
		writeError(w, r, err, "error adding task")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) setTaskCompletion(w http.ResponseWriter, r *http.Request) {
	var update models.TaskCompletionUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "error decoding task completion")
		return
	}
	update.TaskID = chi.URLParam(r, "taskID")

	if err := h.services.RecordService.SetTaskCompletion(r.Context(), update); err != nil {
		writeError(w, r, err, "error updating task completion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

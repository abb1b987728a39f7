package http

import (
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/go-chi/chi/v5"
)

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// listUsers returns every account including the password hash. The client
// session manager matches credentials against this list.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err, "error decoding user")
		return
	}

	created, err := h.services.UserService.AddUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "error adding user")
		return
	}

	utils.WriteJSON(w, created.Session(), http.StatusCreated)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	valid, err := h.services.UserService.VerifyUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error verifying user")
		return
	}

	utils.WriteJSON(w, verifyResponse{Valid: valid}, http.StatusOK)
}

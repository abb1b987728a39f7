package http

import (
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/go-chi/chi/v5"
)

// listGuests answers GET /api/guests/?user_id=&role=. An ADMIN sees every
// guest; any other role value is treated as USER.
func (h *Handler) listGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	role := models.Role(query.Get("role"))
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	guests, err := h.services.RecordService.ListGuests(r.Context(), query.Get("user_id"), role)
	if err != nil {
		writeError(w, r, err, "error listing guests")
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}

	utils.WriteJSON(w, guests, http.StatusOK)
}

func (h *Handler) addGuest(w http.ResponseWriter, r *http.Request) {
	var guest models.Guest
	if err := decodeJSON(r, &guest); err != nil {
		writeError(w, r, err, "error decoding guest")
		return
	}

	created, err := h.services.RecordService.AddGuest(r.Context(), guest)
	if err != nil {
		writeError(w, r, err, "error adding guest")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateGuestStatus(w http.ResponseWriter, r *http.Request) {
	var update models.GuestStatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "error decoding guest status")
		return
	}
	update.GuestID = chi.URLParam(r, "guestID")

	if err := h.services.RecordService.UpdateGuestStatus(r.Context(), update); err != nil {
		writeError(w, r, err, "error updating guest status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteGuest(w http.ResponseWriter, r *http.Request) {
	if err := h.services.RecordService.DeleteGuest(r.Context(), chi.URLParam(r, "guestID")); err != nil {
		writeError(w, r, err, "error deleting guest")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

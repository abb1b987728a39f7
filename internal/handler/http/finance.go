package http

import (
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
)

func (h *Handler) listFinance(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.RecordService.ListFinance(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, r, err, "error listing finance entries")
		return
	}
	if entries == nil {
		entries = []models.FinanceEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) addFinanceEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.FinanceEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, r, err, "error decoding finance entry")
		return
	}

	created, err := h.services.RecordService.AddFinanceEntry(r.Context(), entry)
	if err != nil {
		writeError(w, r, err, "error adding finance entry")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

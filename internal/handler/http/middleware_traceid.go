package http

import (
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's X-Trace-ID or generates one, stores it in
// the request context and attaches a child logger tagged with it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx, _ = h.logger.WithTraceID(ctx, traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/utils"
)

// withBodyHash verifies the HashSHA256 header against the raw request body.
// It is a pass-through when the handler has no hash key.
func (h *Handler) withBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withBodyHash").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, err, "failed to read request body")
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(utils.HashHeader)
		if hashFromRequest == "" {
			writeError(w, r, ErrEmptyHashHeader, "request is not signed")
			return
		}

		if !utils.VerifyHash(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.withBodyHash").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			writeError(w, r, ErrBodyHashMismatch, "integrity check failed")
			return
		}

		log.Debug().Str("func", "*Handler.withBodyHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}

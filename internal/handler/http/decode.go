package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// decodeJSON decodes the request body into v. Failures wrap ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

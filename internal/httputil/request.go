package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
)

// ParseJSON decodes the request body into dest. The body is capped at
// 1MB; a decode failure is already a classified BadRequest so handlers
// can pass it straight to the normalizer.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	return nil
}

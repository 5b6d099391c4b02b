package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lillieharlow/Bloggy-API/internal/httputil"
	"github.com/lillieharlow/Bloggy-API/internal/repository/postgres"
)

// APIVersion is reported by the welcome endpoint.
const APIVersion = "1.0.0"

// UtilsHandler handles the welcome and health endpoints.
type UtilsHandler struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewUtilsHandler creates a new utils handler.
func NewUtilsHandler(pool *pgxpool.Pool, logger *slog.Logger) *UtilsHandler {
	return &UtilsHandler{pool: pool, logger: logger}
}

// Welcome greets the caller
// GET /api/v1/utils
func (h *UtilsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Hello from Bloggy-API!",
		"version": APIVersion,
	})
}

// DatabaseHealth reports store connectivity
// GET /api/v1/utils/databaseHealth
func (h *UtilsHandler) DatabaseHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	host := "Not connected"
	if h.pool != nil && h.pool.Ping(ctx) == nil {
		host = h.pool.Config().ConnConfig.Host
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"models":  postgres.TableNames,
		"host":    host,
	})
}

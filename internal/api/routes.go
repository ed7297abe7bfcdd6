// internal/api/routes.go
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the API routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /activities", h.GetActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", h.Signup)
	mux.HandleFunc("POST /activities/{activity}/remove-participant", h.RemoveParticipant)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())
}

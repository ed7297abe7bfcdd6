// internal/api/handlers.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/validation"
	"mergington-activities/internal/registry"
)

// Handler serves the activity signup API. The registry is injected so
// tests get isolated instances instead of sharing package state.
type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
	errs     *errors.HTTPHandler
}

func NewHandler(reg *registry.Registry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
		errs:     errors.NewHTTPHandler(log),
	}
}

// GetActivities returns the full name-to-activity mapping.
func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Snapshot())
}

// Signup adds a participant to an activity roster.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	activityName, email, err := h.rosterParams(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}

	if err := h.registry.Signup(activityName, email); err != nil {
		h.errs.WriteError(w, err)
		return
	}

	h.logger.Info("participant signed up", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// RemoveParticipant removes a participant from an activity roster.
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	activityName, email, err := h.rosterParams(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}

	if err := h.registry.RemoveParticipant(activityName, email); err != nil {
		h.errs.WriteError(w, err)
		return
	}

	h.logger.Info("participant removed", map[string]interface{}{
		"activity": activityName,
		"email":    email,
	})
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, activityName),
	})
}

// rosterParams extracts and checks the activity path segment and email
// query parameter shared by both mutating endpoints.
func (h *Handler) rosterParams(r *http.Request) (string, string, error) {
	activityName := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	missing := validation.RequireNonEmpty(map[string]string{
		"activity": activityName,
		"email":    email,
	})
	if len(missing) > 0 {
		return "", "", errors.NewValidationFailedError(
			fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", ")))
	}

	// Emails are accepted as opaque identifiers; an odd shape is worth a
	// warning but not a rejection.
	if !validation.ValidateEmail(email) {
		h.logger.Warn("email failed shape check", map[string]interface{}{
			"email": email,
		})
	}

	return activityName, email, nil
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status: "healthy",
		Time:   time.Now().Format(time.RFC3339),
	})
}

// Ready reports readiness to serve traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status: "ready",
		Time:   time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

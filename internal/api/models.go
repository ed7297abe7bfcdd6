// internal/api/models.go
package api

// MessageResponse confirms a successful signup or removal.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by the health and readiness probes.
type StatusResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// internal/registry/schema.go
package registry

// Activity is one extracurricular offering. Field names are the service's
// wire format, so they stay in snake_case.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog is the seed document the registry is initialized from.
type Catalog struct {
	Version    string               `json:"version"`
	Activities map[string]*Activity `json:"activities"`
}

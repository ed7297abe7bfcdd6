// internal/registry/registry.go

// Package registry holds the in-memory activity catalog and its three
// operations: snapshot, signup, and participant removal. All state lives in
// one process-local map and is reset by restart.
package registry

import (
	"sync"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/metrics"
)

// Registry is the single shared catalog instance. One mutex serializes
// every operation: the duplicate check and the append/remove must be
// atomic or concurrent requests could corrupt a roster.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*Activity
}

// New builds a registry from a catalog, copying every record so the caller
// cannot alias internal state.
func New(catalog *Catalog) *Registry {
	activities := make(map[string]*Activity, len(catalog.Activities))
	for name, act := range catalog.Activities {
		participants := make([]string, len(act.Participants))
		copy(participants, act.Participants)
		activities[name] = &Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		}
		metrics.RosterSize.WithLabelValues(name).Set(float64(len(participants)))
	}
	return &Registry{activities: activities}
}

// NewDefault builds a registry seeded with the embedded catalog.
func NewDefault() (*Registry, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return New(catalog), nil
}

// Snapshot returns a deep copy of the full name-to-activity mapping.
// Participants slices are always non-nil so they serialize as arrays.
func (r *Registry) Snapshot() map[string]Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		participants := make([]string, len(act.Participants))
		copy(participants, act.Participants)
		out[name] = Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		}
	}
	return out
}

// Signup appends email to the activity's roster. Duplicate signups fail
// and leave the roster unchanged. MaxParticipants is advisory and not
// checked here, matching the behavior callers already depend on.
func (r *Registry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		return errors.NewActivityNotFoundError(activityName)
	}
	for _, p := range act.Participants {
		if p == email {
			return errors.NewAlreadySignedUpError(activityName, email)
		}
	}

	act.Participants = append(act.Participants, email)
	metrics.SignupsTotal.WithLabelValues(activityName).Inc()
	metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(act.Participants)))
	return nil
}

// RemoveParticipant removes email from the activity's roster, preserving
// the relative order of the remaining entries.
func (r *Registry) RemoveParticipant(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		return errors.NewActivityNotFoundError(activityName)
	}

	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NewParticipantNotFoundError(activityName, email)
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)
	metrics.RemovalsTotal.WithLabelValues(activityName).Inc()
	metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(act.Participants)))
	return nil
}

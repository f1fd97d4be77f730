// Package memory implements the registry backend in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"school-activities-service/config"
	"school-activities-service/internal/entities"

	"go.uber.org/zap"
)

// Registry holds the authoritative activity set for the process lifetime.
// One lock serializes every check-then-mutate sequence, so a signup or
// unregistration is atomic with its precondition check.
type Registry struct {
	log *zap.SugaredLogger
	cfg config.RegistryConfig

	mu         sync.RWMutex
	activities map[string]*entities.Activity
	// order preserves seed insertion order for listings; the set of names
	// is fixed after OnStart.
	order []string
}

// New creates a memory registry instance.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *Registry {
	return &Registry{
		log:        log.Named("repo.memory"),
		cfg:        cfg.Registry,
		activities: make(map[string]*entities.Activity),
	}
}

// OnStart populates the registry from the configured seed.
func (r *Registry) OnStart(_ context.Context) error {
	seed := defaultSeed()
	if r.cfg.SeedPath != "" {
		loaded, err := loadSeedFile(r.cfg.SeedPath)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		seed = loaded
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range seed {
		a := seed[i]
		if _, exists := r.activities[a.Name]; exists {
			return fmt.Errorf("duplicate activity in seed: %q", a.Name)
		}
		r.activities[a.Name] = &a
		r.order = append(r.order, a.Name)
	}

	r.log.Infow("registry ready", "activities", len(r.order), "enforce_capacity", r.cfg.EnforceCapacity)
	return nil
}

// OnStop releases nothing; state is discarded with the process.
func (r *Registry) OnStop(_ context.Context) error {
	return nil
}

// ListActivities returns a snapshot of every activity in insertion order.
func (r *Registry) ListActivities(_ context.Context) ([]entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, snapshot(r.activities[name]))
	}
	return out, nil
}

// AddParticipant appends the email to the activity roster.
func (r *Registry) AddParticipant(_ context.Context, activityName, email string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return nil, fmt.Errorf("%w: %s in %s", entities.ErrAlreadySignedUp, email, activityName)
	}
	if r.cfg.EnforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return nil, fmt.Errorf("%w: %s", entities.ErrActivityFull, activityName)
	}

	a.Participants = append(a.Participants, email)
	snap := snapshot(a)
	return &snap, nil
}

// RemoveParticipant deletes the email from the activity roster.
func (r *Registry) RemoveParticipant(_ context.Context, activityName, email string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			snap := snapshot(a)
			return &snap, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", entities.ErrNotSignedUp, email, activityName)
}

// snapshot copies the record so callers never alias the guarded roster slice.
func snapshot(a *entities.Activity) entities.Activity {
	out := *a
	out.Participants = append([]string(nil), a.Participants...)
	return out
}

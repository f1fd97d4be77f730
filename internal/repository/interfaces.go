// Package repository contains repository interfaces for registry backends.
package repository

import (
	"context"

	"school-activities-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ActivityInterface exposes activity roster operations.
type ActivityInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) (*entities.Activity, error)
	RemoveParticipant(ctx context.Context, activityName, email string) (*entities.Activity, error)
}

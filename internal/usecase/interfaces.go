package usecase

import (
	"context"

	"school-activities-service/internal/entities"
)

// ActivityUsecaseInterface abstracts roster operations for the delivery layer.
type ActivityUsecaseInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	Signup(ctx context.Context, activityName, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error)
}

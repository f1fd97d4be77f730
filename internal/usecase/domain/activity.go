// Package domain contains application Usecases orchestrating the activity registry.
package domain

import (
	"context"
	"errors"
	"fmt"

	"school-activities-service/internal/entities"
	"school-activities-service/internal/observability"
)

// ListActivities returns the full registry in insertion order.
func (u *Usecase) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListActivities(ctx)
}

// Signup adds the email to the activity roster.
func (u *Usecase) Signup(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if activityName == "" {
		u.log.Errorw("failed to sign up: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to sign up: missing email", "activity", activityName)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	a, err := u.repo.AddParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return nil, err
	}

	observability.RecordSignup(activityName)
	return a, nil
}

// Unregister removes the email from the activity roster.
func (u *Usecase) Unregister(ctx context.Context, activityName, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if activityName == "" {
		u.log.Errorw("failed to unregister: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to unregister: missing email", "activity", activityName)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	a, err := u.repo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return nil, err
	}

	observability.RecordUnregistration(activityName)
	return a, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, entities.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, entities.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, entities.ErrActivityFull):
		return "activity_full"
	default:
		return "internal"
	}
}

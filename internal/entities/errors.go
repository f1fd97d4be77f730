// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrActivityNotFound signals missing activity.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp signals a duplicate signup for the same activity.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrNotSignedUp signals unregistration of an absent participant.
	ErrNotSignedUp = errors.New("not signed up")
	// ErrActivityFull signals a roster at capacity when enforcement is enabled.
	ErrActivityFull = errors.New("activity full")
)

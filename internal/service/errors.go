package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when a login attempt fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotificationFailed is returned when no provider could deliver a notification
	ErrNotificationFailed = errors.New("notification could not be delivered")
)

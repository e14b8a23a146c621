package models

import "errors"

// ConfigurationError aborts a command: the node is not (or already) configured
type ConfigurationError string

func (e ConfigurationError) Error() string { return string(e) }

// AuthorizationError aborts a command issued on a node with the wrong role
type AuthorizationError string

func (e AuthorizationError) Error() string { return string(e) }

// NotFoundError is a recoverable reference to a missing entity
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

// ConflictError is a recoverable operation that does not fit the current state
type ConflictError string

func (e ConflictError) Error() string { return string(e) }

// InvalidInputError is a malformed request
type InvalidInputError string

func (e InvalidInputError) Error() string { return string(e) }

const (
	ErrNotConfigured      ConfigurationError = "no coordinator configured"
	ErrAlreadyConfigured  ConfigurationError = "leaderboard already configured"
	ErrNotCoordinator     AuthorizationError = "operation only allowed on the coordinator"
	ErrUnknownMessageKind InvalidInputError  = "unknown message kind"
)

// IsConfiguration reports whether err is a configuration error
func IsConfiguration(err error) bool {
	var e ConfigurationError
	return errors.As(err, &e)
}

// IsAuthorization reports whether err is an authorization error
func IsAuthorization(err error) bool {
	var e AuthorizationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

// IsConflict reports whether err is a state-conflict error
func IsConflict(err error) bool {
	var e ConflictError
	return errors.As(err, &e)
}

// IsInvalidInput reports whether err is a malformed request
func IsInvalidInput(err error) bool {
	var e InvalidInputError
	return errors.As(err, &e)
}

// IsFatal reports whether err must abort the whole command
func IsFatal(err error) bool {
	return IsConfiguration(err) || IsAuthorization(err)
}

package clients

import "errors"

var (
	// ErrInvalidName is returned when the name is empty
	ErrInvalidName = errors.New("name is required")

	// ErrMissingEmail is returned when the email is empty
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidStatus is returned for an unknown lifecycle status
	ErrInvalidStatus = errors.New("invalid client status")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")
)

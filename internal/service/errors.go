package service

import "errors"

var (
	// ErrInvalidSyncID is returned when a sync id does not match the
	// required format: uppercase alphanumeric plus hyphen, 4+ characters.
	ErrInvalidSyncID = errors.New("invalid sync id")

	ErrUnauthorized = errors.New("unauthorized")
)

package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTripLength   = errors.New("trip length must be a whole number of days")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrSessionNotFound     = errors.New("trip session not found")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrCompletionFailed    = errors.New("completion request failed")
	ErrEmptyCompletion     = errors.New("completion returned no choices")
	ErrLocationLookup      = errors.New("location lookup failed")
	ErrDatabaseError       = errors.New("database error")
)

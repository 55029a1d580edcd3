package domain

import "errors"

var (
	ErrInvalidPlay       = errors.New("invalid play")
	ErrInvalidAudience   = errors.New("audience must be at least 1")
	ErrUnknownGenre      = errors.New("unknown genre")
	ErrNotCalculated     = errors.New("invoice has not been calculated")
	ErrRecordNotFound    = errors.New("record not found")
	ErrPlayAlreadyExists = errors.New("play already exists")
)

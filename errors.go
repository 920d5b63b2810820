package tinylog

import "errors"

var (
	// ErrInvalidLevel indicates a Level value outside the known enumeration.
	ErrInvalidLevel = errors.New("log level is invalid")
)

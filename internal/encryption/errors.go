package encryption

import "errors"

var (
	// ErrEmptyPassword is returned when a processor is built without a password.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrSamePath is returned when the computed output path would overwrite
	// the input file.
	ErrSamePath = errors.New("output path equals input path")
)

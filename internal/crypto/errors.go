package crypto

import "errors"

var (
	// ErrEntropyUnavailable is returned when the system random source fails.
	// It is fatal: callers must abort, never retry or degrade.
	ErrEntropyUnavailable = errors.New("system entropy unavailable")
	// ErrInvalidParameters is returned when a caller passes key, salt or nonce
	// material of the wrong length.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrMalformedContainer is returned when input data is too short to be a
	// container produced by Encrypt.
	ErrMalformedContainer = errors.New("malformed container")
	// ErrAuthenticationFailed is returned when verification fails during
	// decryption. A wrong password and tampered data are indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or corrupted file")
)

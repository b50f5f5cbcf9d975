package crypto

import (
	"crypto/subtle"
	"runtime"
)

// ClearBytes overwrites b with zeros.
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(b)
}

// ConstantTimeCompare reports whether a and b are equal without leaking
// timing information about where they differ.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

package crypto

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes returns n bytes from the operating system CSPRNG.
// A failing source is reported as ErrEntropyUnavailable.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return b, nil
}

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a password into a KeySize-byte AES key using
// PBKDF2-HMAC-SHA256. The same password, salt and iteration count always
// produce the same key. Callers own the result and should clear it with
// ClearBytes once done.
func DeriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Seal encrypts plaintext with AES-256-GCM under the given key and nonce,
// returning the ciphertext with the authentication tag appended.
// No additional authenticated data is bound.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts data produced by Seal. Any mismatch in
// key, nonce or ciphertext yields ErrAuthenticationFailed; partial
// plaintext never escapes.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than the %d-byte authentication tag", ErrInvalidParameters, TagSize)
	}

	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidParameters, KeySize, len(key))
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidParameters, NonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return gcm, nil
}

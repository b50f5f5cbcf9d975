// Package crypto implements password-based authenticated encryption of
// whole-file buffers using PBKDF2-derived AES-256-GCM keys, together with
// the container format that carries the salt and nonce beside the ciphertext.
package crypto

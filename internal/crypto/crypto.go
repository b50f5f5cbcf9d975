package crypto

const (
	// SaltSize is the length in bytes of the random salt stored in the container.
	SaltSize = 16
	// NonceSize is the length in bytes of the GCM nonce stored in the container.
	NonceSize = 12
	// KeySize is the length in bytes of the derived AES-256 key.
	KeySize = 32
	// TagSize is the length in bytes of the GCM authentication tag.
	TagSize = 16
	// DefaultIterations is the PBKDF2 iteration count used for every
	// derivation (OWASP recommendation for PBKDF2-HMAC-SHA256).
	DefaultIterations = 600_000
	// HeaderSize is the combined length of the salt and nonce prefix.
	HeaderSize = SaltSize + NonceSize
	// MinContainerSize is the smallest well-formed container: the header
	// followed by the tag of an empty plaintext.
	MinContainerSize = HeaderSize + TagSize
)

// Encrypt seals plaintext under a password and returns the full container.
// A fresh salt and nonce are drawn for every call, so encrypting the same
// plaintext twice yields different containers. The derived key is cleared
// before returning.
func Encrypt(password, plaintext []byte) ([]byte, error) {
	salt, err := RandomBytes(SaltSize)
	if err != nil {
		return nil, err
	}

	nonce, err := RandomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(password, salt, DefaultIterations)
	defer ClearBytes(key)

	ciphertext, err := Seal(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	return EncodeContainer(salt, nonce, ciphertext)
}

// Decrypt parses a container produced by Encrypt and recovers the plaintext.
// The salt and nonce are read from the container itself; only the password
// is supplied by the caller. On any failure no plaintext is returned.
func Decrypt(password, data []byte) ([]byte, error) {
	container, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(password, container.Salt, DefaultIterations)
	defer ClearBytes(key)

	return Open(key, container.Nonce, container.Ciphertext)
}

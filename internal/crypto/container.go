package crypto

import "fmt"

// Container is the parsed form of an encrypted file: a fixed-size header of
// salt and nonce followed by the ciphertext with its trailing tag.
//
// The byte layout is:
//
//	[0:16]  salt
//	[16:28] nonce
//	[28:]   ciphertext with appended tag
//
// There is no magic number or version field; the format is identified by
// context alone.
type Container struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// EncodeContainer assembles the wire layout from its parts.
func EncodeContainer(salt, nonce, ciphertext []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidParameters, SaltSize, len(salt))
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidParameters, NonceSize, len(nonce))
	}

	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than the %d-byte authentication tag", ErrInvalidParameters, TagSize)
	}

	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)

	return out, nil
}

// ParseContainer splits data into salt, nonce and ciphertext. The returned
// slices alias data; no copies are made. Data too short to hold the header
// and a full authentication tag is rejected here, before any cipher work.
func ParseContainer(data []byte) (Container, error) {
	if len(data) < HeaderSize {
		return Container{}, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrMalformedContainer, len(data), HeaderSize)
	}

	if len(data) < MinContainerSize {
		return Container{}, fmt.Errorf("%w: ciphertext section shorter than the %d-byte authentication tag", ErrMalformedContainer, TagSize)
	}

	return Container{
		Salt:       data[:SaltSize],
		Nonce:      data[SaltSize:HeaderSize],
		Ciphertext: data[HeaderSize:],
	}, nil
}

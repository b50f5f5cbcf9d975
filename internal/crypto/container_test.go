package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/pswitchy/fcrypt/internal/crypto"
)

// Case is a single container layout case from a YAML golden file.
// Byte fields are hex-encoded; Error names the expected failure kind.
type Case struct {
	Description string `yaml:"description,omitempty"`
	Data        string `yaml:"data"`
	Salt        string `yaml:"salt,omitempty"`
	Nonce       string `yaml:"nonce,omitempty"`
	Ciphertext  string `yaml:"ciphertext,omitempty"`
	Error       string `yaml:"error,omitempty"`
}

// Group is a named collection of test cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadSpecs(t *testing.T) map[string][]Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	specs := make(map[string][]Group)

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		specs[filepath.Base(f)] = groups
	}

	return specs
}

// forEachCase iterates file→group→case from the golden specs and calls fn per case.
func forEachCase(t *testing.T, fn func(t *testing.T, tc Case)) {
	t.Helper()

	for file, groups := range loadSpecs(t) {
		file, groups := file, groups

		t.Run(file, func(t *testing.T) {
			t.Parallel()

			for _, g := range groups {
				g := g

				t.Run(g.Name, func(t *testing.T) {
					t.Parallel()

					for i, tc := range g.Cases {
						tc := tc

						desc := tc.Description
						if desc == "" {
							desc = fmt.Sprintf("case_%d", i)
						}

						t.Run(desc, func(t *testing.T) {
							t.Parallel()
							fn(t, tc)
						})
					}
				})
			}
		})
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding hex %q: %v", s, err)
	}

	return b
}

func wantError(t *testing.T, name string) error {
	t.Helper()

	switch name {
	case "malformed":
		return crypto.ErrMalformedContainer
	case "invalid_parameters":
		return crypto.ErrInvalidParameters
	default:
		t.Fatalf("unknown error kind %q in golden file", name)

		return nil
	}
}

// TestParseContainer runs all golden layout cases against ParseContainer.
func TestParseContainer(t *testing.T) {
	t.Parallel()

	forEachCase(t, func(t *testing.T, tc Case) {
		t.Helper()

		container, err := crypto.ParseContainer(mustHex(t, tc.Data))

		if tc.Error != "" {
			if !errors.Is(err, wantError(t, tc.Error)) {
				t.Fatalf("ParseContainer error = %v, want %v", err, tc.Error)
			}

			return
		}

		if err != nil {
			t.Fatalf("ParseContainer: %v", err)
		}

		if want := mustHex(t, tc.Salt); !bytes.Equal(container.Salt, want) {
			t.Errorf("salt = %x, want %x", container.Salt, want)
		}

		if want := mustHex(t, tc.Nonce); !bytes.Equal(container.Nonce, want) {
			t.Errorf("nonce = %x, want %x", container.Nonce, want)
		}

		if want := mustHex(t, tc.Ciphertext); !bytes.Equal(container.Ciphertext, want) {
			t.Errorf("ciphertext = %x, want %x", container.Ciphertext, want)
		}
	})
}

// TestEncodeContainer re-assembles every well-formed golden case and checks
// the result is byte-identical to the original data.
func TestEncodeContainer(t *testing.T) {
	t.Parallel()

	forEachCase(t, func(t *testing.T, tc Case) {
		t.Helper()

		if tc.Error != "" {
			t.Skip("error case has no parts to encode")
		}

		encoded, err := crypto.EncodeContainer(mustHex(t, tc.Salt), mustHex(t, tc.Nonce), mustHex(t, tc.Ciphertext))
		if err != nil {
			t.Fatalf("EncodeContainer: %v", err)
		}

		if want := mustHex(t, tc.Data); !bytes.Equal(encoded, want) {
			t.Errorf("encoded = %x, want %x", encoded, want)
		}
	})
}

// TestEncodeContainerRejects checks the length contract on each part.
func TestEncodeContainerRejects(t *testing.T) {
	t.Parallel()

	salt := bytes.Repeat([]byte{0x01}, crypto.SaltSize)
	nonce := bytes.Repeat([]byte{0x02}, crypto.NonceSize)
	ciphertext := bytes.Repeat([]byte{0x03}, crypto.TagSize)

	tests := []struct {
		name       string
		salt       []byte
		nonce      []byte
		ciphertext []byte
	}{
		{"short salt", salt[:crypto.SaltSize-1], nonce, ciphertext},
		{"long salt", append(bytes.Clone(salt), 0x01), nonce, ciphertext},
		{"short nonce", salt, nonce[:crypto.NonceSize-1], ciphertext},
		{"long nonce", salt, append(bytes.Clone(nonce), 0x02), ciphertext},
		{"ciphertext shorter than tag", salt, nonce, ciphertext[:crypto.TagSize-1]},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := crypto.EncodeContainer(tc.salt, tc.nonce, tc.ciphertext); !errors.Is(err, crypto.ErrInvalidParameters) {
				t.Errorf("EncodeContainer error = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

// TestParseAliasesInput documents that parsed fields share the input's backing
// array rather than copying.
func TestParseAliasesInput(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0x07}, crypto.MinContainerSize)

	container, err := crypto.ParseContainer(data)
	if err != nil {
		t.Fatalf("ParseContainer: %v", err)
	}

	data[0] = 0x99

	if container.Salt[0] != 0x99 {
		t.Error("salt does not alias the input slice")
	}
}

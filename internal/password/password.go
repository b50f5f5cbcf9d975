// Package password reads passwords interactively without echoing them.
package password

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"

	"github.com/pswitchy/fcrypt/internal/crypto"
)

// ErrMismatch is returned when the confirmation entry differs from the first.
var ErrMismatch = errors.New("passwords do not match")

// Read prompts on stderr and reads a password from the terminal with echo
// disabled. The caller owns the returned bytes and should clear them with
// crypto.ClearBytes once done.
func Read(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	var (
		password []byte
		err      error
	)

	if term.IsTerminal(int(syscall.Stdin)) {
		password, err = term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)

		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}

		return password, nil
	}

	// Stdin is piped; fall back to the controlling terminal.
	tty, ttyErr := os.Open("/dev/tty")
	if ttyErr != nil {
		if runtime.GOOS == "windows" {
			return nil, errors.New("stdin is piped; pass --password or set FCRYPT_PASSWORD")
		}

		return nil, errors.New("stdin is piped and /dev/tty is unavailable; pass --password or set FCRYPT_PASSWORD")
	}
	defer tty.Close()

	password, err = term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// ReadConfirmed reads a password twice and verifies both entries match.
// Both buffers are cleared on mismatch; the confirmation is always cleared.
func ReadConfirmed(prompt, confirmPrompt string) ([]byte, error) {
	password, err := Read(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := Read(confirmPrompt)
	if err != nil {
		crypto.ClearBytes(password)

		return nil, err
	}

	defer crypto.ClearBytes(confirm)

	if !crypto.ConstantTimeCompare(password, confirm) {
		crypto.ClearBytes(password)

		return nil, ErrMismatch
	}

	return password, nil
}

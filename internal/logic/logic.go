// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pswitchy/fcrypt/internal/config"
	"github.com/pswitchy/fcrypt/internal/crypto"
	"github.com/pswitchy/fcrypt/internal/encryption"
	"github.com/pswitchy/fcrypt/internal/filter"
	"github.com/pswitchy/fcrypt/internal/password"
)

// Run is the main logic of the application.
func Run(cfg *config.Config) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	pw, err := resolvePassword(cfg)
	if err != nil {
		return fmt.Errorf("resolving password: %w", err)
	}
	defer crypto.ClearBytes(pw)

	proc, err := encryption.NewProcessor(cfg, pw)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands positional args through the suffix filter and stores
// the selection back into the configuration.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	files, scanned, err := filter.Resolve(cfg.Files, cfg.EncryptSuffix, cfg.Decrypt)
	if err != nil {
		return scanned, err
	}

	cfg.Files = files

	return scanned, nil
}

// resolvePassword takes the password from the configuration (flag or
// environment) or prompts for it. Encryption prompts twice: a typo in an
// unconfirmed password would lock the data away for good.
func resolvePassword(cfg *config.Config) ([]byte, error) {
	if cfg.Password != "" {
		return []byte(cfg.Password), nil
	}

	if cfg.Decrypt {
		return password.Read("Password: ")
	}

	return password.ReadConfirmed("Password: ", "Confirm password: ")
}

// RunInspect prints the container layout of each selected file without
// requiring a password. Nothing is decrypted; only the public header
// fields and size breakdown are shown.
func RunInspect(cfg *config.Config) error {
	if _, err := resolveFiles(cfg); err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	var failed int

	for _, file := range cfg.Files {
		if err := inspectFile(file); err != nil {
			failed++

			fmt.Fprintf(os.Stderr, "Error inspecting %q: %v\n", file, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be inspected", failed)
	}

	return nil
}

// inspectFile parses one container and prints its public fields.
func inspectFile(file string) error {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	container, err := crypto.ParseContainer(data)
	if err != nil {
		return err
	}

	out := os.Stdout

	fmt.Fprintf(out, "%s:\n", file)
	//nolint:gosec // len is never negative
	fmt.Fprintf(out, "  Size:       %s (%d bytes)\n", humanize.IBytes(uint64(len(data))), len(data))
	fmt.Fprintf(out, "  Salt:       %x\n", container.Salt)
	fmt.Fprintf(out, "  Nonce:      %x\n", container.Nonce)
	fmt.Fprintf(out, "  Ciphertext: %d bytes (includes the %d-byte tag)\n", len(container.Ciphertext), crypto.TagSize)
	fmt.Fprintf(out, "  Plaintext:  %d bytes\n", len(container.Ciphertext)-crypto.TagSize)

	return nil
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}

package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pswitchy/fcrypt/internal/config"
	"github.com/pswitchy/fcrypt/internal/crypto"
	"github.com/pswitchy/fcrypt/internal/fileutil"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// password is borrowed from the caller for the duration of the run;
	// keys derived from it live only inside a single pipeline call
	password []byte

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// The password is borrowed, not copied: the caller remains responsible
// for clearing it after the run.
func NewProcessor(cfg *config.Config, password []byte) (*Processor, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	return &Processor{
		cfg:      cfg,
		password: password,
		results:  make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		file := file

		group.Go(func() error {
			outPath, err := p.outputPath(file)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile runs one file through the crypto pipeline and atomically
// writes the result. Each call derives its own key from the embedded or
// freshly drawn salt, so parallel workers share no key material.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("getting file info: %w", err)
	}

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		output, err = crypto.Decrypt(p.password, input)
		if err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		output, err = crypto.Encrypt(p.password, input)
		if err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	// Ciphertext and recovered plaintext are both written owner-only.
	const ownerReadWrite = 0o600

	if err := fileutil.WriteAtomic(outPath, output, ownerReadWrite); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, info.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption. Paths that would
// overwrite the input are rejected.
func (p *Processor) outputPath(filename string) (string, error) {
	ext := p.cfg.EncryptSuffix

	name := filename
	if p.cfg.Decrypt {
		name = strings.TrimSuffix(filename, p.cfg.EncryptSuffix)
		ext = p.cfg.DecryptSuffix
	}

	outPath := filepath.Join(filepath.Dir(name), filepath.Base(name)+ext)
	if outPath == filepath.Clean(filename) {
		return "", fmt.Errorf("%w: %q", ErrSamePath, filename)
	}

	return outPath, nil
}

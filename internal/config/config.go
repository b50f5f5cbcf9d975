// Package config defines the runtime configuration and its validation.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds all runtime options, populated from flags and environment
// variables by the command layer.
type Config struct {
	// Common flags
	Password           string
	Parallel           int `validate:"min=1"`
	Quiet              bool
	Delete             bool
	Stats              bool
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`
	EncryptSuffix      string `mapstructure:"encrypt-ext" validate:"required"`
	DecryptSuffix      string `mapstructure:"decrypt-ext"`

	// Set by the subcommand, not a flag
	Decrypt bool

	// Positional arguments
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	// A shared suffix would make every decryption overwrite its own input.
	if c.Decrypt && c.EncryptSuffix == c.DecryptSuffix {
		return fmt.Errorf("encrypt-ext and decrypt-ext must differ, both are %q", c.EncryptSuffix)
	}

	return nil
}

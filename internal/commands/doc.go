// Package commands provides the command-line interface for the fcrypt tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - container inspection
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pswitchy/fcrypt/internal/config"
)

// bindFlags is a PersistentPreRunE handler that binds the command's merged
// flag set into viper so environment variables can override defaults.
func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// unmarshalConfig merges flags and environment into a Config, resolving
// positional args into the file list. No args means the current directory.
func unmarshalConfig(args []string) (*config.Config, error) {
	var cfg config.Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(args) == 0 {
		cfg.Files = []string{"."}
	} else {
		cfg.Files = args
	}

	return &cfg, nil
}

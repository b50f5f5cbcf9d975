package commands

import (
	"github.com/spf13/cobra"

	"github.com/pswitchy/fcrypt/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "encrypt [flags] paths...",
		Aliases:           []string{"enc"},
		Short:             "Encrypt files",
		Args:              cobra.MinimumNArgs(1),
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshalConfig(args)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/pswitchy/fcrypt/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "decrypt [flags] [paths...]",
		Aliases:           []string{"dec"},
		Short:             "Decrypt files",
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshalConfig(args)
			if err != nil {
				return err
			}

			cfg.Decrypt = true

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/pswitchy/fcrypt/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "inspect [flags] [paths...]",
		Short:             "Show container metadata without decrypting",
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshalConfig(args)
			if err != nil {
				return err
			}

			// Containers are selected the same way decrypt selects them.
			cfg.Decrypt = true

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.RunInspect(cfg)
		},
	}
}

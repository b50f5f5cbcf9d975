package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "fcrypt [flags] command [flags]",
		Short: "Password-based file encryption utility",
		Long: `A file encryption utility that seals each file into an authenticated
container under a key derived from a password. Provides commands for
encryption, decryption, and container inspection.`,
		Version:      version,
		SilenceUsage: true,
	}

	viper.SetEnvPrefix("fcrypt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.PersistentFlags().
		StringP("password", "p", "", "Password; prompted for interactively when omitted (env: FCRYPT_PASSWORD)")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics at the end")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Carry the input's modification time over to the output")

	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.PersistentFlags().
		String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewInspectCommand())

	return root
}

// Execute builds the root command and runs it.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// fcrypt encrypts and decrypts files with keys derived from a password.
package main

import (
	"os"

	"github.com/pswitchy/fcrypt/internal/commands"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}

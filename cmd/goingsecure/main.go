// main.go
// Package main wires the goingsecure command line: menu mode when run
// bare, plus file-mode transforms, attacks and generators as
// subcommands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/drewwalton19216801/goingsecure/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "goingsecure",
		Short: "Classical and toy-cryptography laboratory",
		Long: `goingsecure is an educational command-line laboratory for classical and
toy-cryptography algorithms: Caesar, repeating-key XOR, Vigenere and a
simplified DES-style block cipher, plus binary/hex/Base64 coders and a
password and key generator.

Run it without arguments for the interactive demonstration menu, or use
the subcommands to transform files, attack ciphertexts and generate key
material. None of the ciphers are suitable for protecting real data.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	root.AddCommand(newEncryptCommand())
	root.AddCommand(newDecryptCommand())
	root.AddCommand(newAttackCommand())
	root.AddCommand(newKeygenCommand())
	return root
}

// markRequired marks each named flag required.
func markRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			slog.Error(fmt.Sprintf("cannot make %s flag required: %s", flag, err))
		}
	}
}

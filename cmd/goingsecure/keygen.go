// keygen.go
// Package main implements the password and key-material generators.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drewwalton19216801/goingsecure/internal/cryptogen"
	"github.com/drewwalton19216801/goingsecure/internal/keybits"
)

func newKeygenCommand() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate passwords, keys, IVs and salts",
		Long: `Generate demonstration key material. The generator is seeded from the
OS entropy source but runs a Mersenne Twister, so treat the output as
teaching material rather than as real secrets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&encoding, "encoding", "hex", "output encoding: hex or base64")

	encode := func(data []byte) (string, error) {
		switch encoding {
		case "hex":
			return cryptogen.ToHex(data), nil
		case "base64":
			return cryptogen.ToBase64(data), nil
		default:
			return "", fmt.Errorf("unknown encoding %q (want hex or base64)", encoding)
		}
	}

	cmd.AddCommand(newKeygenPasswordCommand())
	cmd.AddCommand(newKeygenKeyCommand(encode))
	cmd.AddCommand(newKeygenIVCommand(encode))
	cmd.AddCommand(newKeygenSaltCommand(encode))
	cmd.AddCommand(newKeygenDESCommand())
	return cmd
}

func newKeygenPasswordCommand() *cobra.Command {
	var (
		length     int
		useUpper   bool
		useLower   bool
		useDigit   bool
		useSymbols bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cryptogen.New()
			if err != nil {
				return err
			}
			pw, err := g.Password(length, useUpper, useLower, useDigit, useSymbols)
			if err != nil {
				return err
			}
			fmt.Println(pw)
			if !cryptogen.ValidatePassword(pw) {
				fmt.Println("note: this password does not meet the minimum policy" +
					" (8+ characters with upper, lower, digit and punctuation)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 16, "password length")
	cmd.Flags().BoolVar(&useUpper, "upper", true, "include upper-case letters")
	cmd.Flags().BoolVar(&useLower, "lower", true, "include lower-case letters")
	cmd.Flags().BoolVar(&useDigit, "digits", true, "include digits")
	cmd.Flags().BoolVar(&useSymbols, "symbols", false, "include symbols")
	return cmd
}

func newKeygenKeyCommand(encode func([]byte) (string, error)) *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate a symmetric key",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cryptogen.New()
			if err != nil {
				return err
			}
			key, err := g.Key(bits)
			if err != nil {
				return err
			}
			s, err := encode(key)
			if err != nil {
				return err
			}
			fmt.Println(s)
			cryptogen.SecureWipe(key)
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 128, "key size in bits (multiple of 8)")
	return cmd
}

func newKeygenIVCommand(encode func([]byte) (string, error)) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "iv",
		Short: "Generate an initialization vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cryptogen.New()
			if err != nil {
				return err
			}
			iv, err := g.IV(size)
			if err != nil {
				return err
			}
			s, err := encode(iv)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 16, "IV size in bytes")
	return cmd
}

func newKeygenSaltCommand(encode func([]byte) (string, error)) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Generate a salt",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cryptogen.New()
			if err != nil {
				return err
			}
			salt, err := g.Salt(length)
			if err != nil {
				return err
			}
			s, err := encode(salt)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 16, "salt length in bytes")
	return cmd
}

func newKeygenDESCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "des",
		Short: "Generate an 8-byte block cipher key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keybits.RandomKey()
			if err != nil {
				return err
			}
			fmt.Println(keybits.KeyHex(key))
			return nil
		},
	}
}

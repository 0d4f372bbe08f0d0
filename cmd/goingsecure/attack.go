// attack.go
// Package main implements the ciphertext attack commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drewwalton19216801/goingsecure/internal/caesar"
	"github.com/drewwalton19216801/goingsecure/internal/freqplot"
	"github.com/drewwalton19216801/goingsecure/internal/vigenere"
	"github.com/drewwalton19216801/goingsecure/internal/xorcipher"
)

func newAttackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attack",
		Short: "Recover keys from ciphertext files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newAttackCaesarCommand())
	cmd.AddCommand(newAttackXORCommand())
	cmd.AddCommand(newAttackVigenereCommand())
	return cmd
}

func newAttackCaesarCommand() *cobra.Command {
	var (
		inputFile string
		plotFile  string
	)

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Brute-force and frequency-analyze a Caesar ciphertext",
		Long: `Print the 26 possible decodings of a Caesar ciphertext along with the
key suggested by Spanish letter-frequency analysis. With --plot, also
write a bar chart of the ciphertext letter frequencies.

Example:
  goingsecure attack caesar -i secret.txt --plot freq.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			text := string(content)

			for _, c := range caesar.BruteForce(text) {
				fmt.Printf("key %2d: %s\n", c.Key, c.Plaintext)
			}
			fmt.Printf("\nfrequency analysis suggests key %d\n", caesar.GuessKey(text))

			if plotFile != "" {
				if err := freqplot.SavePNG(caesar.Frequencies(text), "Ciphertext letter frequencies", plotFile); err != nil {
					return err
				}
				fmt.Printf("frequency chart written to %s\n", plotFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "ciphertext file")
	cmd.Flags().StringVar(&plotFile, "plot", "", "write a letter-frequency chart to this file")
	markRequired(cmd, "input")
	return cmd
}

func newAttackXORCommand() *cobra.Command {
	var (
		inputFile string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "xor",
		Short: "Brute-force a repeating-key XOR ciphertext",
		Long: `Search for XOR keys that decode the ciphertext to printable text.
Mode 1 tries all 256 one-byte keys, mode 2 all 65536 two-byte keys, and
mode dict a list of common weak keys.

Example:
  goingsecure attack xor -i secret.bin --mode dict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var candidates []xorcipher.Candidate
			switch mode {
			case "1":
				candidates = xorcipher.BruteForce1Byte(content)
			case "2":
				candidates = xorcipher.BruteForce2Byte(content)
			case "dict":
				candidates = xorcipher.BruteForceDictionary(content)
			default:
				return fmt.Errorf("unknown mode %q (want 1, 2 or dict)", mode)
			}

			for _, c := range candidates {
				fmt.Println("=============================")
				fmt.Printf("key  : %q (%s)\n", c.Key, xorcipher.HexDump(c.Key))
				fmt.Printf("text : %s\n", c.Plaintext)
			}
			fmt.Printf("%d readable candidate(s)\n", len(candidates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "ciphertext file")
	cmd.Flags().StringVar(&mode, "mode", "1", "search mode: 1, 2 or dict")
	markRequired(cmd, "input")
	return cmd
}

func newAttackVigenereCommand() *cobra.Command {
	var (
		inputFile string
		maxKeyLen int
	)

	cmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Brute-force a Vigenere ciphertext",
		Long: `Try every key up to --max-len letters and keep the decoding that looks
most like Spanish. Cost grows with 26^len; lengths beyond 4 or so take
a long time.

Example:
  goingsecure attack vigenere -i secret.txt --max-len 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if maxKeyLen < 1 {
				return fmt.Errorf("--max-len must be at least 1, got %d", maxKeyLen)
			}

			res := vigenere.Break(string(content), maxKeyLen)
			fmt.Printf("key   : %s\n", res.Key)
			fmt.Printf("score : %.0f\n", res.Score)
			fmt.Printf("text  : %s\n", res.Plaintext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "ciphertext file")
	cmd.Flags().IntVar(&maxKeyLen, "max-len", 3, "maximum key length to try")
	markRequired(cmd, "input")
	return cmd
}

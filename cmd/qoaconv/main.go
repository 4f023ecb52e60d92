// qoaconv converts between 16-bit PCM WAV and QOA files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	overwrite bool
	verbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qoaconv",
	Short: "Convert between WAV and QOA (Quite OK Audio)",
	Long: `qoaconv - Convert between 16-bit PCM WAV and QOA files.

Examples:
  qoaconv encode input.wav output.qoa
  qoaconv decode input.qoa output.wav
  qoaconv info input.qoa`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress to stderr")

	encodeCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing output file")
	decodeCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing output file")

	rootCmd.AddCommand(encodeCmd, decodeCmd, infoCmd)
}

func checkOutput(path string) error {
	if overwrite {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("qoaconv: %s already exists (use --overwrite)", path)
	}
	return nil
}

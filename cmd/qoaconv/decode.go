package main

import (
	"fmt"
	"os"

	"github.com/quiteokaudio/qoa"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <in.qoa> <out.wav>",
	Short: "Decode a QOA file to 16-bit PCM WAV",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	if err := checkOutput(out); err != nil {
		return err
	}

	bytes, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("qoaconv: read %s: %w", in, err)
	}

	pcm, desc, err := qoa.Decode(bytes)
	if err != nil {
		return fmt.Errorf("qoaconv: decode %s: %w", in, err)
	}

	if err := writeWAV(out, pcm, desc.SampleRate, desc.Channels); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s -> %s: %d channels, %d Hz, %d samples\n",
			in, out, desc.Channels, desc.SampleRate, desc.Samples)
	}

	return nil
}

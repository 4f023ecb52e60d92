package main

import (
	"fmt"
	"os"

	"github.com/quiteokaudio/qoa"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <in.wav> <out.qoa>",
	Short: "Encode a 16-bit PCM WAV file to QOA",
	Args:  cobra.ExactArgs(2),
	RunE:  runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	if err := checkOutput(out); err != nil {
		return err
	}

	pcm, sampleRate, channels, err := readWAV(in)
	if err != nil {
		return err
	}

	desc := &qoa.StreamDescriptor{
		Channels:   channels,
		SampleRate: sampleRate,
		Samples:    uint32(len(pcm)) / uint32(channels),
	}

	bytes, err := qoa.Encode(pcm, desc)
	if err != nil {
		return fmt.Errorf("qoaconv: encode %s: %w", in, err)
	}

	if err := os.WriteFile(out, bytes, 0o644); err != nil {
		return fmt.Errorf("qoaconv: write %s: %w", out, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s -> %s: %d channels, %d Hz, %d samples, %d bytes\n",
			in, out, desc.Channels, desc.SampleRate, desc.Samples, len(bytes))
	}

	return nil
}

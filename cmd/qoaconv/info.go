package main

import (
	"fmt"
	"os"
	"time"

	"github.com/quiteokaudio/qoa"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <in.qoa>",
	Short: "Print a QOA file's channels, sample rate, and length",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	in := args[0]

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("qoaconv: open %s: %w", in, err)
	}
	defer f.Close()

	hdr := make([]byte, qoa.MinFileSize)
	if _, err := f.Read(hdr); err != nil {
		return fmt.Errorf("qoaconv: read %s: %w", in, err)
	}

	desc, _, err := qoa.DecodeHeader(hdr)
	if err != nil {
		return fmt.Errorf("qoaconv: %s: %w", in, err)
	}

	duration := time.Duration(float64(desc.Samples) / float64(desc.SampleRate) * float64(time.Second))

	fmt.Printf("File:        %s\n", in)
	fmt.Printf("Channels:    %d\n", desc.Channels)
	fmt.Printf("Sample Rate: %d Hz\n", desc.SampleRate)
	fmt.Printf("Samples:     %d\n", desc.Samples)
	fmt.Printf("Duration:    %s\n", duration.Round(time.Millisecond))

	return nil
}

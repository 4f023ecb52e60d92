package main

import (
	"math"
	"path/filepath"
	"testing"
)

// writeTestWAV writes a short sine-wave 16-bit PCM WAV file, grounded on
// the sibling converter package's createTestWAV test fixture.
func writeTestWAV(t *testing.T, path string, seconds float64, sampleRate, channels int) int {
	t.Helper()

	numSamples := int(seconds*float64(sampleRate)) * channels
	samples := make([]int16, numSamples)
	for i := range samples {
		phase := float64(i) / float64(sampleRate) * 440.0 * 2 * math.Pi
		samples[i] = int16(16000 * math.Sin(phase))
	}

	if err := writeWAV(path, samples, uint32(sampleRate), uint8(channels)); err != nil {
		t.Fatalf("writeWAV failed: %v", err)
	}
	return numSamples / channels
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	wavIn := filepath.Join(dir, "in.wav")
	qoaPath := filepath.Join(dir, "out.qoa")
	wavOut := filepath.Join(dir, "out.wav")

	wantSamples := writeTestWAV(t, wavIn, 0.1, 44100, 2)

	overwrite = true
	defer func() { overwrite = false }()

	rootCmd.SetArgs([]string{"encode", wavIn, qoaPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	rootCmd.SetArgs([]string{"decode", qoaPath, wavOut})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	pcm, sampleRate, channels, err := readWAV(wavOut)
	if err != nil {
		t.Fatalf("readWAV on roundtripped file failed: %v", err)
	}
	if sampleRate != 44100 {
		t.Errorf("sampleRate = %d; want 44100", sampleRate)
	}
	if channels != 2 {
		t.Errorf("channels = %d; want 2", channels)
	}
	if got := len(pcm) / int(channels); got != wantSamples {
		t.Errorf("decoded samples per channel = %d; want %d", got, wantSamples)
	}
}

func TestEncodeRejectsExistingOutputWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	wavIn := filepath.Join(dir, "in.wav")
	qoaPath := filepath.Join(dir, "out.qoa")

	writeTestWAV(t, wavIn, 0.01, 8000, 1)

	overwrite = true
	rootCmd.SetArgs([]string{"encode", wavIn, qoaPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("initial encode failed: %v", err)
	}

	overwrite = false
	rootCmd.SetArgs([]string{"encode", wavIn, qoaPath})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("encode overwrote an existing file without --overwrite")
	}
}

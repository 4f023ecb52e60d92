package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// readWAV decodes a 16-bit PCM WAV file into channel-interleaved
// samples. Non-16-bit WAVs are rejected rather than silently
// normalized: this tool converts, it doesn't resample or requantize.
func readWAV(path string) (pcm []int16, sampleRate uint32, channels uint8, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("qoaconv: %s is not a valid WAV file", path)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return nil, 0, 0, fmt.Errorf("qoaconv: read WAV format: %w", err)
	}
	if decoder.BitDepth != 16 {
		return nil, 0, 0, fmt.Errorf("qoaconv: %s is %d-bit; only 16-bit PCM WAV is supported", path, decoder.BitDepth)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{SampleRate: int(decoder.SampleRate), NumChannels: int(decoder.NumChans)},
	}
	chunk := &audio.IntBuffer{Data: make([]int, 4096), Format: buf.Format}
	for {
		n, err := decoder.PCMBuffer(chunk)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("qoaconv: decode WAV PCM: %w", err)
		}
		if n == 0 {
			break
		}
		buf.Data = append(buf.Data, chunk.Data[:n]...)
	}

	pcm = make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		pcm[i] = int16(s)
	}

	return pcm, uint32(decoder.SampleRate), uint8(decoder.NumChans), nil
}

// writeWAV writes channel-interleaved 16-bit PCM samples as a
// canonical WAV file. Hand-rolled instead of using go-audio/wav's
// encoder, since decodeWAV is the only WAV entry point this tool's
// grounding exercises; encoding follows the same RIFF layout
// go-audio/wav itself produces.
func writeWAV(path string, pcm []int16, sampleRate uint32, channels uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	dataSize := len(pcm) * 2
	fileSize := 36 + dataSize
	byteRate := sampleRate * uint32(channels) * 2
	blockAlign := uint16(channels) * 2

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(fileSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(16)) // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(&buf, binary.LittleEndian, pcm)

	if _, err := io.Copy(f, &buf); err != nil {
		return fmt.Errorf("qoaconv: write WAV: %w", err)
	}
	return nil
}

package qoa

import (
	"fmt"
)

// StreamDescriptor describes one QOA stream: its shape (channels,
// sample rate, total samples per channel) and the per-channel LMS
// predictor state, which is meaningful only for the duration of one
// Encode or Decode call.
type StreamDescriptor struct {
	Channels   uint8
	SampleRate uint32 // 24-bit range: [1, 0xFFFFFF]
	Samples    uint32 // total samples per channel

	LMS []LMSState

	// TotalError is an optional diagnostic: the sum of squared
	// per-sample errors across every slice of the most recent Encode
	// call. It is not part of the wire format and is left at 0 by Decode.
	TotalError uint64
}

// Encode encodes pcm (channel-interleaved, length desc.Samples *
// desc.Channels) into a QOA byte stream. It resets desc.LMS to the
// initial predictor state for every channel and leaves it holding the
// state at the end of the stream. It returns ErrInvalidDescriptor if desc.Samples,
// desc.SampleRate, or desc.Channels are zero or out of range.
func Encode(pcm []int16, desc *StreamDescriptor) ([]byte, error) {
	if desc.Samples == 0 {
		return nil, fmt.Errorf("%w: samples must be nonzero", ErrInvalidDescriptor)
	}
	if desc.SampleRate == 0 || desc.SampleRate > 0xffffff {
		return nil, fmt.Errorf("%w: samplerate %d out of range", ErrInvalidDescriptor, desc.SampleRate)
	}
	if desc.Channels == 0 || desc.Channels > MaxChannels {
		return nil, fmt.Errorf("%w: channels %d out of range", ErrInvalidDescriptor, desc.Channels)
	}
	channels := int(desc.Channels)
	if len(pcm) < int(desc.Samples)*channels {
		return nil, fmt.Errorf("%w: pcm span shorter than samples*channels", ErrInvalidDescriptor)
	}

	numFrames := ceilDiv(int(desc.Samples), FrameLen)
	numSlices := ceilDiv(int(desc.Samples), SliceLen)
	size := 8 + numFrames*8 + numFrames*16*channels + numSlices*8*channels

	buf := make([]byte, size)
	cursor := writeU64(uint64(MagicQOA)<<32|uint64(desc.Samples), buf, 0)

	desc.LMS = make([]LMSState, channels)
	for ch := range desc.LMS {
		desc.LMS[ch] = initialLMS()
	}

	var totalErr uint64
	remaining := int(desc.Samples)
	frameStart := 0
	for remaining > 0 {
		fsamples := min(remaining, FrameLen)
		var errSq uint64
		cursor, errSq = encodeFrame(buf, cursor, pcm, frameStart, fsamples, channels, desc.SampleRate, desc.LMS)
		totalErr += errSq
		frameStart += fsamples
		remaining -= fsamples
	}

	desc.TotalError = totalErr

	return buf, nil
}

// DecodeHeader reads just the file header from buf, peeking (without
// consuming) the first frame header to learn the stream's channel
// count and sample rate. It returns a descriptor with Channels,
// SampleRate, and Samples populated (LMS is allocated but not yet
// loaded — that happens per-frame during Decode/DecodeFrame) and the
// number of bytes consumed from buf (always 8, the file header alone).
func DecodeHeader(buf []byte) (*StreamDescriptor, int, error) {
	if len(buf) < MinFileSize {
		return nil, 0, fmt.Errorf("%w: buffer smaller than %d bytes", ErrShortRead, MinFileSize)
	}

	fileHdr, _ := readU64(buf, 0)
	magic := uint32(fileHdr >> 32)
	if magic != MagicQOA {
		return nil, 0, fmt.Errorf("%w: bad magic %08x", ErrMalformed, magic)
	}
	samples := uint32(fileHdr)
	if samples == 0 {
		return nil, 0, fmt.Errorf("%w: samples field is zero", ErrMalformed)
	}

	frameHdr, _ := readU64(buf, 8)
	channels := uint8(frameHdr >> 56)
	samplerate := uint32((frameHdr >> 32) & 0xffffff)
	if channels == 0 || channels > MaxChannels {
		return nil, 0, fmt.Errorf("%w: invalid channel count %d", ErrMalformed, channels)
	}
	if samplerate == 0 {
		return nil, 0, fmt.Errorf("%w: invalid sample rate", ErrMalformed)
	}

	desc := &StreamDescriptor{
		Channels:   channels,
		SampleRate: samplerate,
		Samples:    samples,
		LMS:        make([]LMSState, channels),
	}

	return desc, 8, nil
}

// DecodeFrame decodes a single frame from buf (the frame must start
// at buf[0]) into out at channel-interleaved sample offset outStart,
// using and updating desc.LMS. It returns the number of bytes
// consumed and the number of samples per channel decoded.
// bytesConsumed == 0 signals a failure; no partial output is written
// in that case that the caller should rely on.
//
// The frame is rejected with ErrMalformed if it declares more samples
// than remain between outStart and desc.Samples, even if the frame is
// otherwise internally consistent.
func DecodeFrame(buf []byte, desc *StreamDescriptor, out []int16, outStart int) (int, int, error) {
	budget := int(desc.Samples) - outStart
	consumed, fsamples, err := decodeFrame(buf, 0, desc, out, outStart, budget)
	if err != nil {
		return 0, 0, err
	}
	return consumed, fsamples, nil
}

// Decode decodes a complete QOA byte stream into channel-interleaved
// PCM samples and the stream's descriptor.
func Decode(buf []byte) ([]int16, *StreamDescriptor, error) {
	desc, cursor, err := DecodeHeader(buf)
	if err != nil {
		return nil, nil, err
	}

	channels := int(desc.Channels)
	pcm := make([]int16, int(desc.Samples)*channels)

	sampleIndex := 0
	for sampleIndex < int(desc.Samples) {
		budget := int(desc.Samples) - sampleIndex
		consumed, fsamples, err := decodeFrame(buf, cursor, desc, pcm, sampleIndex, budget)
		if err != nil {
			return nil, nil, err
		}
		if consumed == 0 {
			return nil, nil, fmt.Errorf("%w: frame decode consumed 0 bytes", ErrMalformed)
		}
		cursor += consumed
		sampleIndex += fsamples
	}

	desc.Samples = uint32(sampleIndex)
	desc.TotalError = 0

	return pcm, desc, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

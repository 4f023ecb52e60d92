package qoa

import "fmt"

// encodeFrame encodes up to FrameLen samples per channel, starting at
// frameStart in the channel-interleaved pcm span, into buf at cursor.
// lms is the per-channel predictor state at the *start* of the frame;
// it is written into the frame header verbatim and then mutated in
// place to hold the state at the end of the frame (which the caller
// carries into the next frame).
//
// It returns the advanced cursor and the sum of the winning
// candidates' squared error across every slice, for the descriptor's
// optional TotalError diagnostic.
func encodeFrame(buf []byte, cursor int, pcm []int16, frameStart, fsamples, channels int, samplerate uint32, lms []LMSState) (int, uint64) {
	slices := (fsamples + SliceLen - 1) / SliceLen
	size := frameSize(uint32(channels), uint32(slices))

	hdr := uint64(channels)<<56 | uint64(samplerate)<<32 | uint64(fsamples)<<16 | uint64(size)
	cursor = writeU64(hdr, buf, cursor)

	for ch := range channels {
		var history, weights uint64
		for i := range LMSLen {
			history = (history << 16) | (uint64(lms[ch].History[i]) & 0xffff)
			weights = (weights << 16) | (uint64(lms[ch].Weights[i]) & 0xffff)
		}
		cursor = writeU64(history, buf, cursor)
		cursor = writeU64(weights, buf, cursor)
	}

	var totalErr uint64

	for k := 0; k < slices; k++ {
		sliceStart := k * SliceLen
		sliceEnd := clamp(sliceStart+SliceLen, 0, fsamples)

		for ch := range channels {
			samples := make([]int16, sliceEnd-sliceStart)
			for i := range samples {
				samples[i] = pcm[(frameStart+sliceStart+i)*channels+ch]
			}

			packed, newLMS, errSq := encodeSlice(samples, lms[ch])
			lms[ch] = newLMS
			totalErr += errSq

			cursor = writeU64(packed, buf, cursor)
		}
	}

	return cursor, totalErr
}

// decodeFrame reads one frame from buf starting at cursor, validating
// it against desc (channel count, sample rate, declared size versus
// remaining buffer, and declared samples versus slice capacity) and
// against budget (the number of samples per channel the caller still
// has room for, at out starting from outStart), and writes the
// reconstructed samples into out at channel-interleaved offset
// outStart*desc.Channels. It returns the number of bytes consumed and
// the number of samples per channel decoded.
//
// A returned error means bytesConsumed is 0; callers must not treat
// any part of the frame as valid. budget exists so a frame that is
// internally self-consistent (its own fsize/fsamples/slice count all
// agree) but claims more samples than the stream's declared total still
// fails closed instead of writing past the end of out.
func decodeFrame(buf []byte, cursor int, desc *StreamDescriptor, out []int16, outStart, budget int) (int, int, error) {
	remaining := len(buf) - cursor
	if remaining < 8 {
		return 0, 0, fmt.Errorf("%w: truncated frame header", ErrShortRead)
	}

	hdr, _ := readU64(buf, cursor)
	channels := int(hdr >> 56)
	samplerate := uint32((hdr >> 32) & 0xffffff)
	fsamples := int((hdr >> 16) & 0xffff)
	fsize := int(hdr & 0xffff)

	if channels != int(desc.Channels) {
		return 0, 0, fmt.Errorf("%w: frame channel count %d != descriptor %d", ErrMalformed, channels, desc.Channels)
	}
	if samplerate != desc.SampleRate {
		return 0, 0, fmt.Errorf("%w: frame sample rate %d != descriptor %d", ErrMalformed, samplerate, desc.SampleRate)
	}
	lmsBlockSize := LMSLen * 4 * channels
	if remaining < 8+lmsBlockSize {
		return 0, 0, fmt.Errorf("%w: %d bytes cannot hold a frame header and %d-channel LMS block", ErrShortRead, remaining, channels)
	}
	if fsize > remaining {
		return 0, 0, fmt.Errorf("%w: frame size %d exceeds remaining %d bytes", ErrMalformed, fsize, remaining)
	}

	if fsize < 8+lmsBlockSize {
		return 0, 0, fmt.Errorf("%w: frame size %d too small for %d channels", ErrMalformed, fsize, channels)
	}

	dataSize := fsize - 8 - lmsBlockSize
	if dataSize%(8*channels) != 0 {
		return 0, 0, fmt.Errorf("%w: frame data size %d not a multiple of slice size", ErrMalformed, dataSize)
	}
	slices := dataSize / (8 * channels)
	maxSamples := slices * SliceLen
	if fsamples > maxSamples {
		return 0, 0, fmt.Errorf("%w: frame declares %d samples but only %d slices available", ErrMalformed, fsamples, slices)
	}
	if fsamples > budget {
		return 0, 0, fmt.Errorf("%w: frame declares %d samples but only %d remain in the stream", ErrMalformed, fsamples, budget)
	}

	pos := cursor + 8

	for ch := range channels {
		history, _ := readU64(buf, pos)
		weights, _ := readU64(buf, pos+8)
		pos += 16
		for i := range LMSLen {
			desc.LMS[ch].History[i] = int16(history >> 48)
			history <<= 16
			desc.LMS[ch].Weights[i] = int16(weights >> 48)
			weights <<= 16
		}
	}

	for k := 0; k < slices && k*SliceLen < fsamples; k++ {
		sliceStart := k * SliceLen
		sliceEnd := clamp(sliceStart+SliceLen, 0, fsamples)

		for ch := range channels {
			word, _ := readU64(buf, pos)
			pos += 8

			n := sliceEnd - sliceStart
			dst := make([]int16, n)
			decodeSlice(word, &desc.LMS[ch], dst)
			for i, v := range dst {
				out[(outStart+sliceStart+i)*channels+ch] = v
			}
		}
	}

	return fsize, fsamples, nil
}

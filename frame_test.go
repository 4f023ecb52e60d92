package qoa

import "testing"

func TestFrameContainment(t *testing.T) {
	const channels, fsamples = 2, 137
	pcm := make([]int16, fsamples*channels)
	for i := range pcm {
		pcm[i] = int16((i*257 + 13) % 4000)
	}

	lms := []LMSState{initialLMS(), initialLMS()}
	buf := make([]byte, frameSize(channels, uint32((fsamples+SliceLen-1)/SliceLen)))

	cursor, _ := encodeFrame(buf, 0, pcm, 0, fsamples, channels, 44100, lms)
	if cursor != len(buf) {
		t.Fatalf("encodeFrame consumed %d bytes; want %d (len(buf))", cursor, len(buf))
	}

	hdr, _ := readU64(buf, 0)
	fsize := int(hdr & 0xffff)
	if fsize != len(buf) {
		t.Fatalf("frame header fsize = %d; want %d", fsize, len(buf))
	}
}

func TestEncodeDecodeFrameRoundTrip(t *testing.T) {
	const channels, fsamples = 1, 63
	pcm := make([]int16, fsamples*channels)
	for i := range pcm {
		pcm[i] = int16((i*311)%6000 - 3000)
	}

	lms := []LMSState{initialLMS()}
	slices := (fsamples + SliceLen - 1) / SliceLen
	buf := make([]byte, frameSize(channels, uint32(slices)))
	encodeFrame(buf, 0, pcm, 0, fsamples, channels, 8000, lms)

	desc := &StreamDescriptor{
		Channels:   channels,
		SampleRate: 8000,
		LMS:        []LMSState{{}},
	}
	out := make([]int16, fsamples*channels)
	consumed, decodedSamples, err := decodeFrame(buf, 0, desc, out, 0, fsamples)
	if err != nil {
		t.Fatalf("decodeFrame failed: %v", err)
	}
	if consumed != len(buf) {
		t.Fatalf("consumed = %d; want %d", consumed, len(buf))
	}
	if decodedSamples != fsamples {
		t.Fatalf("decodedSamples = %d; want %d", decodedSamples, fsamples)
	}
}

func TestDecodeFrameRejectsChannelMismatch(t *testing.T) {
	const channels, fsamples = 1, 20
	pcm := make([]int16, fsamples)
	lms := []LMSState{initialLMS()}
	buf := make([]byte, frameSize(channels, 1))
	encodeFrame(buf, 0, pcm, 0, fsamples, channels, 44100, lms)

	desc := &StreamDescriptor{
		Channels:   2, // mismatched on purpose
		SampleRate: 44100,
		LMS:        []LMSState{{}, {}},
	}
	out := make([]int16, fsamples*2)
	_, _, err := decodeFrame(buf, 0, desc, out, 0, fsamples)
	if err == nil {
		t.Fatal("decodeFrame did not reject a channel count mismatch")
	}
}

func TestDecodeFrameRejectsOversizedDeclaration(t *testing.T) {
	const channels, fsamples = 1, 20
	pcm := make([]int16, fsamples)
	lms := []LMSState{initialLMS()}
	buf := make([]byte, frameSize(channels, 1))
	encodeFrame(buf, 0, pcm, 0, fsamples, channels, 44100, lms)

	// truncate the buffer so its declared frame size exceeds what remains.
	truncated := buf[:len(buf)-1]
	desc := &StreamDescriptor{Channels: channels, SampleRate: 44100, LMS: []LMSState{{}}}
	out := make([]int16, fsamples)
	_, _, err := decodeFrame(truncated, 0, desc, out, 0, fsamples)
	if err == nil {
		t.Fatal("decodeFrame did not reject a frame size exceeding the remaining buffer")
	}
}

func TestDecodeFrameRejectsBudgetOverrun(t *testing.T) {
	// a frame that is internally consistent (fsize/fsamples/slice count
	// all agree) but declares more samples than the caller has room for
	// must be rejected before anything is written to out, not allowed to
	// write past the end of a short out span.
	const channels, fsamples = 1, FrameLen
	pcm := make([]int16, fsamples*channels)
	lms := []LMSState{initialLMS()}
	buf := make([]byte, frameSize(channels, uint32(fsamples/SliceLen)))
	encodeFrame(buf, 0, pcm, 0, fsamples, channels, 44100, lms)

	desc := &StreamDescriptor{Channels: channels, SampleRate: 44100, LMS: []LMSState{{}}}
	out := make([]int16, 8)
	_, _, err := decodeFrame(buf, 0, desc, out, 0, 8)
	if err == nil {
		t.Fatal("decodeFrame did not reject a frame exceeding the caller's remaining sample budget")
	}
}

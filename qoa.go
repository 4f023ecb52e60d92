// Package qoa implements the "Quite OK Audio" (QOA) format: a lossy,
// fixed-bitrate, time-domain audio codec built around a 4-tap
// sign-sign LMS predictor and 3-bit quantized residuals packed into
// 64-bit big-endian slices.
//
// The package operates on byte spans and sample spans; it does no
// file I/O of its own. Encode and Decode allocate and return their
// output, which the caller then owns; DecodeFrame writes into a span
// the caller provides. Callers (see cmd/qoaconv for an example) are
// responsible for reading/writing the encoded bytes somewhere.
//
// https://qoaformat.org/qoa-specification.pdf
package qoa

import "math"

// Exported constants mirroring the reference format's QOA_* names.
const (
	// MagicQOA is the four ASCII bytes "qoaf" identifying a QOA file.
	MagicQOA = 0x716f6166

	// MinFileSize is the smallest buffer DecodeHeader accepts: an
	// 8-byte file header plus the 8-byte first frame header it peeks.
	MinFileSize = 16

	// MaxChannels is the largest channel count this package will
	// encode or accept on decode.
	MaxChannels = 8

	// LMSLen is the number of taps in the LMS predictor.
	LMSLen = 4

	// SliceLen is the number of samples coded by one 64-bit slice.
	SliceLen = 20

	// SlicesPerFrame is the number of slices in a full frame.
	SlicesPerFrame = 256

	// FrameLen is the number of samples per channel in a full frame
	// (SlicesPerFrame * SliceLen).
	FrameLen = SlicesPerFrame * SliceLen
)

// scalefactorTab holds round(pow(s+1, 2.75)) for s in [0, 15].
var scalefactorTab = [16]int{
	1, 7, 21, 45, 84, 138, 211, 304, 421, 562, 731, 928, 1157, 1419, 1715, 2048,
}

// reciprocalTab holds, for each scalefactor index s,
// ((1<<16) + scalefactorTab[s] - 1) / scalefactorTab[s], precomputed so
// the encoder's div never performs a true division per sample.
var reciprocalTab = [16]int{
	65536, 9363, 3121, 1457, 781, 475, 311, 216, 156, 117, 90, 71, 57, 47, 39, 32,
}

// quantTab maps a clamped residual in [-8, 8] (indexed by value+8) to
// its 3-bit quantized code.
var quantTab = [17]int8{
	7, 7, 7, 5, 5, 3, 3, 1, /* -8..-1 */
	0, /*  0     */
	0, 2, 2, 4, 4, 6, 6, 6, /*  1.. 8 */
}

// dequantTab maps a scalefactor and a 3-bit quantized code back to a
// dequantized residual.
var dequantTab = [16][8]int16{
	{1, -1, 3, -3, 5, -5, 7, -7},
	{5, -5, 18, -18, 32, -32, 49, -49},
	{16, -16, 53, -53, 95, -95, 147, -147},
	{34, -34, 113, -113, 203, -203, 315, -315},
	{63, -63, 210, -210, 378, -378, 588, -588},
	{104, -104, 345, -345, 621, -621, 966, -966},
	{158, -158, 528, -528, 950, -950, 1477, -1477},
	{228, -228, 760, -760, 1368, -1368, 2128, -2128},
	{316, -316, 1053, -1053, 1895, -1895, 2947, -2947},
	{422, -422, 1405, -1405, 2529, -2529, 3934, -3934},
	{548, -548, 1828, -1828, 3290, -3290, 5117, -5117},
	{696, -696, 2320, -2320, 4176, -4176, 6496, -6496},
	{868, -868, 2893, -2893, 5207, -5207, 8099, -8099},
	{1064, -1064, 3548, -3548, 6386, -6386, 9933, -9933},
	{1286, -1286, 4288, -4288, 7718, -7718, 12005, -12005},
	{1536, -1536, 5120, -5120, 9216, -9216, 14336, -14336},
}

// frameSize returns the exact byte length of a frame coding the given
// number of slices per channel: header + per-channel LMS blocks + slices.
func frameSize(channels, slices uint32) uint32 {
	return 8 + LMSLen*4*channels + 8*slices*channels
}

// clamp returns v restricted to [lo, hi].
func clamp(v, lo, hi int) int {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// clampS16 restricts v to the signed 16-bit range.
func clampS16(v int) int16 {
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

// div performs the encoder's rounding divide by a scalefactor's
// reciprocal: biased rounding followed by a round-away-from-zero
// correction, avoiding a true division per sample.
func div(v, scalefactor int) int {
	reciprocal := reciprocalTab[scalefactor]
	n := (v*reciprocal + (1 << 15)) >> 16
	n += sign(v) - sign(n)
	return n
}

// sign returns -1, 0, or +1 according to the sign of v.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

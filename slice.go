package qoa

import "math"

// encodeSlice brute-forces the scalefactor in [0, 15] that minimizes
// the accumulated squared error over samples (length 1..SliceLen),
// starting from lmsIn. It returns the packed 64-bit slice word (with
// any unused tail residual slots, for a short final slice, zero-padded
// into the low bits), the LMS state to carry into the next slice, and
// the winning candidate's accumulated squared error.
//
// lmsIn is never mutated: each candidate scalefactor runs against its
// own copy so a rejected candidate can't leak state into the next.
func encodeSlice(samples []int16, lmsIn LMSState) (packed uint64, lmsOut LMSState, errSq uint64) {
	l := len(samples)

	var bestErr uint64 = math.MaxUint64
	var bestPacked uint64
	var bestLMS LMSState

	for sf := range 16 {
		lms := lmsIn
		p := uint64(sf)
		var err uint64
		ok := true

		for _, s := range samples {
			predicted := lms.Predict()
			residual := int(s) - predicted
			scaled := div(residual, sf)
			clamped := clamp(scaled, -8, 8)
			q := int(quantTab[clamped+8])
			dq := dequantTab[sf][q]
			reconstructed := clampS16(predicted + int(dq))

			e := int64(s) - int64(reconstructed)
			err += uint64(e * e)
			if err > bestErr {
				ok = false
				break
			}

			lms.Update(reconstructed, dq)
			p = (p << 3) | uint64(q)
		}

		if ok && err < bestErr {
			bestErr = err
			bestPacked = p
			bestLMS = lms
		}
	}

	if l < SliceLen {
		bestPacked <<= uint((SliceLen - l) * 3)
	}

	return bestPacked, bestLMS, bestErr
}

// decodeSlice reconstructs up to SliceLen samples of one channel from
// a packed 64-bit slice word, writing them into out (len(out) <= SliceLen)
// and advancing l. Residual codes beyond len(out) are ignored.
func decodeSlice(word uint64, l *LMSState, out []int16) {
	scalefactor := int((word >> 60) & 0xf)
	word <<= 4

	for i := range out {
		q := int((word >> 61) & 0x7)
		word <<= 3

		predicted := l.Predict()
		dq := dequantTab[scalefactor][q]
		reconstructed := clampS16(predicted + int(dq))

		out[i] = reconstructed
		l.Update(reconstructed, dq)
	}
}

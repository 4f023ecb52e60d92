package qoa

// LMSState is one channel's 4-tap sign-sign LMS predictor state.
//
// History and Weights are stored as int16, the same width they have
// on the wire. Predict sums its products in int precision; Update
// adjusts Weights in int16 arithmetic, so a weight that leaves the
// signed 16-bit range wraps around at that point rather than being
// held wider until the state is packed into a frame.
type LMSState struct {
	History [LMSLen]int16
	Weights [LMSLen]int16
}

// initialLMS is the canonical starting state the encoder uses for
// every channel before processing sample 0. The asymmetric weights
// bias the first few predictions toward a stable filter.
func initialLMS() LMSState {
	return LMSState{
		Weights: [LMSLen]int16{0, 0, -(1 << 13), 1 << 14},
	}
}

// Predict returns the LMS filter's prediction for the next sample.
func (l *LMSState) Predict() int {
	var p int
	for i := range LMSLen {
		p += int(l.Weights[i]) * int(l.History[i])
	}
	return p >> 13
}

// Update adjusts the filter's weights by the sign of each historical
// sample scaled by the latest residual, then shifts sample into history.
func (l *LMSState) Update(sample, residual int16) {
	delta := residual >> 4
	for i := range LMSLen {
		if l.History[i] < 0 {
			l.Weights[i] -= delta
		} else {
			l.Weights[i] += delta
		}
	}
	for i := range LMSLen - 1 {
		l.History[i] = l.History[i+1]
	}
	l.History[LMSLen-1] = sample
}

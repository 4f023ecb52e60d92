package qoa

import "testing"

func TestLMSInitialState(t *testing.T) {
	l := initialLMS()

	wantWeights := [LMSLen]int16{0, 0, -8192, 16384}
	if l.Weights != wantWeights {
		t.Fatalf("initial weights = %v; want %v", l.Weights, wantWeights)
	}

	wantHistory := [LMSLen]int16{0, 0, 0, 0}
	if l.History != wantHistory {
		t.Fatalf("initial history = %v; want %v", l.History, wantHistory)
	}
}

func TestLMSPredictZeroHistory(t *testing.T) {
	l := initialLMS()
	if got := l.Predict(); got != 0 {
		t.Fatalf("Predict() with zero history = %d; want 0", got)
	}
}

func TestLMSUpdateShiftsHistory(t *testing.T) {
	l := initialLMS()
	l.Update(10, 0)
	l.Update(20, 0)
	l.Update(30, 0)
	l.Update(40, 0)
	want := [LMSLen]int16{10, 20, 30, 40}
	if l.History != want {
		t.Fatalf("history after 4 updates = %v; want %v", l.History, want)
	}

	l.Update(50, 0)
	want = [LMSLen]int16{20, 30, 40, 50}
	if l.History != want {
		t.Fatalf("history after 5th update = %v; want %v", l.History, want)
	}
}

func TestLMSUpdateSignSignWeights(t *testing.T) {
	l := LMSState{
		History: [LMSLen]int16{-1, 1, -1, 1},
		Weights: [LMSLen]int16{100, 100, 100, 100},
	}
	// residual >> 4 with residual=32 gives delta=2.
	l.Update(0, 32)
	want := [LMSLen]int16{98, 102, 98, 102}
	if l.Weights != want {
		t.Fatalf("weights after update = %v; want %v", l.Weights, want)
	}
}

package filtfilt

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestApplyMultiParallel tests that parallel processing produces correct results.
func TestApplyMultiParallel(t *testing.T) {
	const (
		sampleRate = 44100.0
		channels   = 4
		numSamples = 4410 // 0.1 seconds
		freq       = 440.0
	)

	b := []float64{0.06745527388907191, 0.13491054777814382, 0.06745527388907191}
	a := []float64{1, -1.142980502539901, 0.41280159809618866}

	// Different phases per channel so they are processed independently
	input := make([][]float64, channels)
	for ch := range channels {
		input[ch] = make([]float64, numSamples)
		for i := range numSamples {
			phase := float64(ch) * math.Pi / 4
			input[ch][i] = math.Sin(2*math.Pi*freq*float64(i)/sampleRate + phase)
		}
	}

	filterSeq, err := New(&Config{B: b, A: a, Channels: channels, EnableParallel: false})
	if err != nil {
		t.Fatalf("Failed to create sequential filter: %v", err)
	}

	filterPar, err := New(&Config{B: b, A: a, Channels: channels, EnableParallel: true})
	if err != nil {
		t.Fatalf("Failed to create parallel filter: %v", err)
	}

	outputSeq, err := filterSeq.ApplyMulti(input)
	if err != nil {
		t.Fatalf("Sequential ApplyMulti failed: %v", err)
	}

	outputPar, err := filterPar.ApplyMulti(input)
	if err != nil {
		t.Fatalf("Parallel ApplyMulti failed: %v", err)
	}

	if len(outputSeq) != len(outputPar) {
		t.Fatalf("Channel count mismatch: seq=%d, par=%d", len(outputSeq), len(outputPar))
	}

	for ch := range channels {
		if len(outputSeq[ch]) != numSamples || len(outputPar[ch]) != numSamples {
			t.Fatalf("Channel %d length mismatch: seq=%d, par=%d, want %d",
				ch, len(outputSeq[ch]), len(outputPar[ch]), numSamples)
		}

		// Outputs must be bit-exact
		for i := range outputSeq[ch] {
			if outputSeq[ch][i] != outputPar[ch][i] {
				t.Errorf("Channel %d sample %d mismatch: seq=%v, par=%v",
					ch, i, outputSeq[ch][i], outputPar[ch][i])
				break // Don't flood with errors
			}
		}
	}
}

// TestApplyMultiChannelIndependence verifies channels are processed independently.
func TestApplyMultiChannelIndependence(t *testing.T) {
	const (
		sampleRate = 44100.0
		channels   = 2
		numSamples = 4410
	)

	f, err := New(&Config{
		B:              []float64{0.06745527388907191, 0.13491054777814382, 0.06745527388907191},
		A:              []float64{1, -1.142980502539901, 0.41280159809618866},
		Channels:       channels,
		EnableParallel: true,
	})
	if err != nil {
		t.Fatalf("Failed to create filter: %v", err)
	}

	// One silent channel and one low-frequency signal well inside the passband
	input := make([][]float64, channels)
	input[0] = make([]float64, numSamples)
	input[1] = make([]float64, numSamples)
	for i := range numSamples {
		input[1][i] = math.Sin(2 * math.Pi * 100.0 * float64(i) / sampleRate)
	}

	output, err := f.ApplyMulti(input)
	if err != nil {
		t.Fatalf("ApplyMulti failed: %v", err)
	}

	for i, v := range output[0] {
		if v != 0 {
			t.Fatalf("Silent channel has non-zero output at %d: %v", i, v)
		}
	}

	var maxCh1 float64
	for _, v := range output[1] {
		maxCh1 = math.Max(maxCh1, math.Abs(v))
	}
	if maxCh1 < 0.9 {
		t.Errorf("Signal channel has too low amplitude: max=%v", maxCh1)
	}
}

// TestApplyMultiMonoFallback verifies mono processing works with parallel enabled.
func TestApplyMultiMonoFallback(t *testing.T) {
	f, err := New(&Config{
		B:              []float64{0.5, 0.5},
		A:              []float64{1},
		EnableParallel: true, // Should fall back to sequential for mono
	})
	if err != nil {
		t.Fatalf("Failed to create filter: %v", err)
	}

	output, err := f.ApplyMulti([][]float64{{1, 1, 1, 1, 1}})
	if err != nil {
		t.Fatalf("ApplyMulti failed: %v", err)
	}

	if len(output) != 1 || len(output[0]) != 5 {
		t.Fatalf("Unexpected output shape: %v", output)
	}
	for i, v := range output[0] {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("output[%d] = %v, want 1", i, v)
		}
	}
}

// TestApplyMultiErrors verifies channel count checks and per-channel error wrapping.
func TestApplyMultiErrors(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		f, err := New(&Config{
			B:              []float64{0.5, 0.5},
			A:              []float64{1, -0.2},
			Channels:       3,
			EnableParallel: parallel,
		})
		if err != nil {
			t.Fatalf("Failed to create filter: %v", err)
		}

		_, err = f.ApplyMulti([][]float64{{1, 2, 3, 4, 5}})
		if !errors.Is(err, ErrChannelCount) {
			t.Errorf("parallel=%v: expected ErrChannelCount, got %v", parallel, err)
		}

		_, err = f.ApplyMulti([][]float64{{1, 2, 3, 4, 5}, {1, 2}, {1, 2, 3, 4, 5}})
		if !errors.Is(err, ErrInputTooShort) {
			t.Errorf("parallel=%v: expected ErrInputTooShort, got %v", parallel, err)
		}
		if err != nil && !strings.Contains(err.Error(), "channel 1") {
			t.Errorf("parallel=%v: error does not name the channel: %v", parallel, err)
		}
	}
}

// TestApplyMultiAnyChannelCount verifies that Channels == 0 accepts any count.
func TestApplyMultiAnyChannelCount(t *testing.T) {
	f, err := New(&Config{B: []float64{1}, A: []float64{1}})
	if err != nil {
		t.Fatalf("Failed to create filter: %v", err)
	}

	for _, n := range []int{0, 1, 5} {
		input := make([][]float64, n)
		for ch := range input {
			input[ch] = []float64{float64(ch)}
		}
		output, err := f.ApplyMulti(input)
		if err != nil {
			t.Fatalf("%d channels: ApplyMulti failed: %v", n, err)
		}
		if len(output) != n {
			t.Errorf("%d channels: got %d outputs", n, len(output))
		}
	}
}

// Command filtfilt-wav applies a zero-phase IIR filter to every channel of a
// WAV file.
//
// Usage:
//
//	filtfilt-wav -b 0.0675,0.1349,0.0675 -a 1,-1.143,0.4128 input.wav output.wav
//	filtfilt-wav -b 0.5,0.5 -fast input.wav output.wav             # float32 precision
//	filtfilt-wav -b 0.5,0.5 -parallel=false input.wav output.wav   # Disable parallel processing
//
// The whole file is filtered in memory, since the backward pass needs the
// end of the signal before it can produce the first output sample.
// Parallel processing is enabled by default for stereo/multichannel files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/tphakala/go-filtfilt"
)

const (
	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV format tags accepted as integer PCM
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	// CLI defaults
	defaultDenominator = "1"
	minRequiredArgs    = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	bFlag := flag.String("b", "", "Numerator coefficients, comma separated (required)")
	aFlag := flag.String("a", defaultDenominator, "Denominator coefficients, comma separated")
	solverName := flag.String("solver", filtfilt.SolverQR.String(), "Initial-condition solver: qr, gauss")
	fast := flag.Bool("fast", false, "Use float32 precision (sufficient for 16-bit audio)")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	// Validate arguments before setting up profiling
	args := flag.Args()
	if len(args) < minRequiredArgs || *bFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -b coeffs [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -b 0.25,0.5,0.25 in.wav out.wav                   # FIR smoothing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -b 0.0675,0.1349,0.0675 -a 1,-1.143,0.4128 in.wav out.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	b, err := parseCoefficientList(*bFlag)
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}
	a, err := parseCoefficientList(*aFlag)
	if err != nil {
		return fmt.Errorf("denominator: %w", err)
	}
	solver, err := filtfilt.ParseSolver(*solverName)
	if err != nil {
		return err
	}

	filter, err := filtfilt.New(&filtfilt.Config{
		B:              b,
		A:              a,
		Solver:         solver,
		EnableParallel: *parallel,
	})
	if err != nil {
		return fmt.Errorf("failed to create filter: %w", err)
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		nb, na := filter.Coefficients()
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: order %d, b=%v, a=%v", filter.Order(), nb, na)
		log.Printf("DC gain: %g (zero-phase %g)", filter.DCGain(), filter.DCGain()*filter.DCGain())
		log.Printf("Solver: %s", solver)
		log.Printf("SIMD: %s", filtfilt.SIMDInfo())
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	var stats *filterStats
	if *fast {
		stats, err = filterWAV(inputPath, outputPath, filter.ApplyMultiFloat32, *verbose)
	} else {
		stats, err = filterWAV(inputPath, outputPath, filter.ApplyMulti, *verbose)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.frames)
	if stats.clipped > 0 {
		fmt.Printf("  Clipped samples: %d\n", stats.clipped)
	}
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.frames)/float64(stats.sampleRate)/elapsed.Seconds())

	return nil
}

type filterStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	clipped    int
}

// Float constraint for generic filtering.
type Float interface {
	float32 | float64
}

// filterWAV reads the whole input file, filters every channel with apply and
// writes the result at the source sample rate and bit depth.
func filterWAV[F Float](inputPath, outputPath string, apply func([][]F) ([][]F, error), verbose bool) (stats *filterStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Decode all samples
	pcm, err := input.decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	frames := len(pcm.Data) / input.channels
	maxVal := getMaxValue(input.bitDepth)

	// 3. Deinterleave and normalize to [-1, 1]
	channelBufs := make([][]F, input.channels)
	for ch := range channelBufs {
		channelBufs[ch] = make([]F, frames)
	}
	deinterleaveInto(pcm.Data, channelBufs, input.channels, frames, 1/maxVal)

	// 4. Filter (handles parallel/sequential)
	filtered, err := apply(channelBufs)
	if err != nil {
		return nil, fmt.Errorf("filtering failed: %w", err)
	}

	// 5. Interleave with clamping and write
	outData := make([]int, frames*input.channels)
	clipped := interleaveInto(filtered, outData, maxVal)
	if verbose && clipped > 0 {
		log.Printf("Clamped %d samples to full scale", clipped)
	}

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (important for WAV header updates)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := output.WriteSamples(outData); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}

	return &filterStats{
		sampleRate: input.rate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
		frames:     frames,
		clipped:    clipped,
	}, nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

package filtfilt

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-filtfilt/internal/engine"
	"github.com/tphakala/go-filtfilt/internal/iir"
	"github.com/tphakala/go-filtfilt/internal/linalg"
	"github.com/tphakala/go-filtfilt/internal/simdops"
)

// Common errors returned by the filter functions.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid filter configuration")

	// ErrBadCoefficients indicates coefficient vectors of different lengths,
	// empty vectors, or a[0] != 1 passed to a single-pass filter.
	ErrBadCoefficients = iir.ErrBadCoefficients

	// ErrStateSizeMismatch indicates an initial state whose length differs
	// from the filter order.
	ErrStateSizeMismatch = iir.ErrStateSizeMismatch

	// ErrZeroLeadingCoefficient indicates a[0] == 0, which cannot be normalized.
	ErrZeroLeadingCoefficient = engine.ErrZeroLeadingCoefficient

	// ErrInputTooShort indicates a signal with 3*order samples or fewer.
	ErrInputTooShort = engine.ErrInputTooShort

	// ErrChannelCount indicates a multi-channel input with the wrong number of channels.
	ErrChannelCount = errors.New("unexpected channel count")
)

// SolverType selects the linear solver used for the initial conditions.
type SolverType int

const (
	// SolverQR uses a Householder QR factorization. This is the default.
	SolverQR SolverType = iota

	// SolverGauss uses Gaussian elimination with partial pivoting.
	SolverGauss
)

// String returns the solver name accepted by ParseSolver.
func (s SolverType) String() string {
	switch s {
	case SolverQR:
		return "qr"
	case SolverGauss:
		return "gauss"
	default:
		return fmt.Sprintf("SolverType(%d)", int(s))
	}
}

// ParseSolver returns the SolverType for a name as printed by String.
func ParseSolver(name string) (SolverType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "qr", "":
		return SolverQR, nil
	case "gauss":
		return SolverGauss, nil
	default:
		return 0, fmt.Errorf("%w: unknown solver %q (use qr or gauss)", ErrInvalidConfig, name)
	}
}

func (s SolverType) linearSolver() linalg.Solver {
	if s == SolverGauss {
		return linalg.GaussSolver{}
	}
	return linalg.QRSolver{}
}

// Config holds zero-phase filter configuration.
type Config struct {
	// B holds the numerator coefficients, b[0] first. An empty B is padded
	// with zeros like any shorter vector, giving a filter that outputs zeros.
	B []float64

	// A holds the denominator coefficients, a[0] first. A[0] must not be zero.
	// The shorter of A and B is padded with zeros.
	A []float64

	// Solver selects how the steady-state initial conditions are computed.
	Solver SolverType

	// Channels is the number of channels ApplyMulti expects.
	// Zero accepts any number of channels.
	Channels int

	// EnableParallel enables parallel channel processing in ApplyMulti.
	// When true, channels are filtered concurrently using goroutines.
	// Has no effect on mono input.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.A) == 0 {
		return fmt.Errorf("%w: denominator must have a leading coefficient", ErrInvalidConfig)
	}

	if c.Solver != SolverQR && c.Solver != SolverGauss {
		return fmt.Errorf("%w: unknown solver %v", ErrInvalidConfig, c.Solver)
	}

	if c.Channels < 0 {
		return fmt.Errorf("%w: channels must not be negative", ErrInvalidConfig)
	}

	if c.Channels > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	return nil
}

// Filter is a zero-phase filter with normalized coefficients and
// precomputed initial conditions. It is safe for concurrent use.
type Filter struct {
	config Config
	zp64   *engine.ZeroPhase[float64]
	zp32   *engine.ZeroPhase[float32]
}

// New creates a zero-phase filter with the specified configuration.
// Coefficients are normalized once and the initial conditions are solved
// once, so the filter can be applied to any number of signals.
func New(config *Config) (*Filter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	solver := config.Solver.linearSolver()

	zp64, err := engine.NewZeroPhase[float64](config.B, config.A, solver)
	if err != nil {
		return nil, err
	}
	zp32, err := engine.NewZeroPhase[float32](config.B, config.A, solver)
	if err != nil {
		return nil, err
	}

	cfg := *config
	cfg.B, cfg.A = zp64.Coefficients()

	return &Filter{config: cfg, zp64: zp64, zp32: zp32}, nil
}

// Apply returns the zero-phase filtered copy of x.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	return f.zp64.Filter(x)
}

// ApplyFloat32 is like Apply but for float32 samples. Initial conditions
// are solved in float64 and rounded once.
func (f *Filter) ApplyFloat32(x []float32) ([]float32, error) {
	return f.zp32.Filter(x)
}

// ApplyMulti filters multiple channels independently.
// When EnableParallel is set in the config, channels are processed concurrently.
// Otherwise, channels are processed sequentially.
func (f *Filter) ApplyMulti(input [][]float64) ([][]float64, error) {
	return applyMulti(input, f.config, f.zp64.Filter)
}

// ApplyMultiFloat32 is like ApplyMulti but for float32 samples.
func (f *Filter) ApplyMultiFloat32(input [][]float32) ([][]float32, error) {
	return applyMulti(input, f.config, f.zp32.Filter)
}

func applyMulti[F simdops.Float](input [][]F, config Config, apply func([]F) ([]F, error)) ([][]F, error) {
	if config.Channels > 0 && len(input) != config.Channels {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrChannelCount, config.Channels, len(input))
	}

	output := make([][]F, len(input))

	// Sequential processing (default or when parallel disabled)
	if !config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			result, err := apply(input[ch])
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			output[ch] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(input))

	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()

			result, err := apply(input[channel])
			if err != nil {
				errChan <- fmt.Errorf("channel %d: %w", channel, err)
				return
			}
			output[channel] = result
		}(ch)
	}

	wg.Wait()
	close(errChan)

	// Report the first error received
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Order returns the filter order, max(len(A), len(B)) - 1.
func (f *Filter) Order() int {
	return f.zp64.Order()
}

// Coefficients returns copies of the padded, normalized coefficients.
func (f *Filter) Coefficients() (b, a []float64) {
	return f.zp64.Coefficients()
}

// InitialConditions returns a copy of the steady-state initial conditions
// for a unit input. The values are NaN when they do not exist, which is the
// case for a filter with a pole at z = 1.
func (f *Filter) InitialConditions() []float64 {
	return f.zp64.InitialConditions()
}

// MinInputLength returns the shortest signal Apply accepts, 3*order + 1.
func (f *Filter) MinInputLength() int {
	return f.zp64.EdgeLength() + 1
}

// DCGain returns the single-pass gain at zero frequency. A zero-phase pass
// scales a constant signal by the square of this value.
func (f *Filter) DCGain() float64 {
	return engine.DCGain(f.zp64.Coefficients())
}

// SIMDInfo describes the SIMD instruction sets available on this CPU.
func SIMDInfo() string {
	return cpu.Info()
}

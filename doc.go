// Package filtfilt provides zero-phase IIR filtering in pure Go.
//
// A recursive (IIR) filter delays different frequencies by different amounts.
// Running the same filter forward over a signal and then backward over the
// result cancels those delays, so the output has no phase distortion and
// features such as peaks and steps stay where they were in the input. The
// magnitude response is applied twice.
//
// # Features
//
//   - Direct-Form-II-Transposed kernel with unrolled loops for orders 1 to 6
//   - Forward and reverse single-pass filtering with explicit state
//   - Zero-phase filtering with reflected edges and steady-state initial
//     conditions, so constant and slowly varying signals show no start-up
//     transients
//   - float64 and float32 processing paths
//   - Multi-channel support with optional parallel channel processing
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For one-shot zero-phase filtering:
//
//	y, err := filtfilt.ZeroPhaseFilter(b, a, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For applying the same filter to many signals:
//
//	f, err := filtfilt.New(&filtfilt.Config{B: b, A: a})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, x := range signals {
//	    y, err := f.Apply(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    use(y)
//	}
//
// For a single pass with caller-managed state:
//
//	y, zf, err := filtfilt.ApplyFilter(b, a, x, z, false)
//
// # Coefficients
//
// Coefficients are ordered by increasing delay: b[0] + b[1]*z^-1 + ... over
// a[0] + a[1]*z^-1 + .... The zero-phase functions pad the shorter vector
// with zeros and divide both by a[0]; [ApplyFilter] expects vectors that are
// already normalized and of equal length. Coefficient design is out of scope;
// use any filter design tool and pass the result in.
//
// Unstable filters are not detected. Their output diverges.
//
// # Signal Length
//
// Zero-phase filtering of an order-N filter needs more than 3*N samples,
// see [Filter.MinInputLength].
//
// # Thread Safety
//
// [Filter] instances are immutable after construction and safe for
// concurrent use. The package has no mutable global state.
package filtfilt

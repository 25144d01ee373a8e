// Command filtfilt applies a zero-phase IIR filter to one column of a text
// data file and writes the filtered signal one value per line.
//
// Usage:
//
//	filtfilt -f data.txt -b bCoeff                  # single column, a = [1]
//	filtfilt -f data.csv -d , -c 1 -r 1 -b bCoeff -a aCoeff -o out.txt
//
// Coefficient files hold one value per line, b[0] or a[0] first.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tphakala/go-filtfilt"
)

const defaultOutputPath = "./demoFiltFilt"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dataPath := flag.String("f", "", "Data file name (required)")
	delim := flag.String("d", "", "Field delimiter; empty means one value per line")
	column := flag.Int("c", 0, "Column index, from 0")
	skipRows := flag.Int("r", 0, "Number of leading rows to skip")
	bPath := flag.String("b", "", "Numerator coefficient file (required)")
	aPath := flag.String("a", "", "Denominator coefficient file (default a = [1])")
	outputPath := flag.String("o", defaultOutputPath, "Output file")
	solverName := flag.String("solver", filtfilt.SolverQR.String(), "Initial-condition solver: qr, gauss")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *dataPath == "" || *bPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -f data -b bCoeff [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -f data.txt -d , -c 1 -r 1 -b bCoeff -a aCoeff\n", os.Args[0])
		return fmt.Errorf("missing required flags")
	}
	if *skipRows < 0 {
		*skipRows = 0
	}

	solver, err := filtfilt.ParseSolver(*solverName)
	if err != nil {
		return err
	}

	x, err := readColumnFile(*dataPath, *delim, *column, *skipRows)
	if err != nil {
		return err
	}

	b, err := readCoefficientFile(*bPath)
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}
	a := []float64{1}
	if *aPath != "" {
		if a, err = readCoefficientFile(*aPath); err != nil {
			return fmt.Errorf("denominator: %w", err)
		}
	}

	if *verbose {
		log.Printf("Data: %s, column %d, %d samples", *dataPath, *column, len(x))
		log.Printf("b: %v", b)
		log.Printf("a: %v", a)
		log.Printf("Solver: %s", solver)
	}

	start := time.Now()
	filter, err := filtfilt.New(&filtfilt.Config{B: b, A: a, Solver: solver})
	if err != nil {
		return fmt.Errorf("failed to create filter: %w", err)
	}
	y, err := filter.Apply(x)
	if err != nil {
		return fmt.Errorf("filtering failed: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("filtfilt took %.3f ms\n", float64(elapsed.Microseconds())/1000)

	if err := writeSignalFile(*outputPath, y); err != nil {
		return err
	}
	if *verbose {
		log.Printf("Wrote %d samples to %s", len(y), *outputPath)
	}
	return nil
}

func readColumnFile(path, delim string, column, skip int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() { _ = f.Close() }()

	x, err := readColumn(f, delim, column, skip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

func readCoefficientFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open coefficient file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readCoefficients(f)
}

func writeSignalFile(path string, y []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := writeSignal(f, y); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

var (
	errNoData        = errors.New("no data rows")
	errColumnMissing = errors.New("column out of range")
)

// readColumns reads delimited numeric rows from r after skipping the first
// skip lines. With an empty delimiter every line holds a single value.
// Blank lines are ignored. All rows must have the same number of fields.
func readColumns(r io.Reader, delim string, skip int) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var columns [][]float64
	line := 0
	for scanner.Scan() {
		line++
		if line <= skip {
			continue
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := []string{text}
		if delim != "" {
			fields = strings.Split(text, delim)
		}

		if columns == nil {
			columns = make([][]float64, len(fields))
		} else if len(fields) != len(columns) {
			return nil, fmt.Errorf("line %d: got %d fields, want %d", line, len(fields), len(columns))
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i, err)
			}
			columns[i] = append(columns[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	if len(columns) == 0 {
		return nil, errNoData
	}
	return columns, nil
}

// readColumn returns a single column of a delimited data file.
func readColumn(r io.Reader, delim string, column, skip int) ([]float64, error) {
	columns, err := readColumns(r, delim, skip)
	if err != nil {
		return nil, err
	}
	if column < 0 || column >= len(columns) {
		return nil, fmt.Errorf("%w: column %d requested, data has %d", errColumnMissing, column, len(columns))
	}
	return columns[column], nil
}

// readCoefficients reads one coefficient per line.
func readCoefficients(r io.Reader) ([]float64, error) {
	coeffs, err := readColumn(r, "", 0, 0)
	if errors.Is(err, errNoData) {
		return nil, errors.New("no coefficients")
	}
	return coeffs, err
}

// writeSignal writes one sample per line using the shortest representation
// that parses back to the same float64.
func writeSignal(w io.Writer, y []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range y {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

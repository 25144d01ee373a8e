package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim string
		skip  int
		want  [][]float64
	}{
		{
			name:  "single column",
			input: "1\n2.5\n-3e-2\n",
			want:  [][]float64{{1, 2.5, -0.03}},
		},
		{
			name:  "csv with header",
			input: "t,v\n0,1\n1,2\n2,3",
			delim: ",",
			skip:  1,
			want:  [][]float64{{0, 1, 2}, {1, 2, 3}},
		},
		{
			name:  "blank lines and padding",
			input: "\n 1 ; 2 \n\n3;4\n",
			delim: ";",
			want:  [][]float64{{1, 3}, {2, 4}},
		},
		{
			name:  "multi character delimiter",
			input: "1::2\n3::4",
			delim: "::",
			want:  [][]float64{{1, 3}, {2, 4}},
		},
		{
			name:  "crlf line endings",
			input: "1\r\n2\r\n",
			want:  [][]float64{{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readColumns(strings.NewReader(tt.input), tt.delim, tt.skip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadColumns_Errors(t *testing.T) {
	_, err := readColumns(strings.NewReader(""), "", 0)
	require.ErrorIs(t, err, errNoData)

	_, err = readColumns(strings.NewReader("header\n"), "", 1)
	require.ErrorIs(t, err, errNoData)

	_, err = readColumns(strings.NewReader("1,2\n3\n"), ",", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = readColumns(strings.NewReader("1,x\n"), ",", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 1")
}

func TestReadColumn(t *testing.T) {
	data := "a,b,c\n1,2,3\n4,5,6\n"

	got, err := readColumn(strings.NewReader(data), ",", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, got)

	_, err = readColumn(strings.NewReader(data), ",", 3, 1)
	require.ErrorIs(t, err, errColumnMissing)

	_, err = readColumn(strings.NewReader(data), ",", -1, 1)
	require.ErrorIs(t, err, errColumnMissing)
}

func TestReadCoefficients(t *testing.T) {
	got, err := readCoefficients(strings.NewReader("1\n-1.5\n0.5625\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1.5, 0.5625}, got)

	_, err = readCoefficients(strings.NewReader("\n\n"))
	require.Error(t, err)
}

func TestWriteSignal_RoundTrip(t *testing.T) {
	y := []float64{0, 1.0 / 3, -2.5e-300, math.Pi, 1e21, -0.1}

	var buf bytes.Buffer
	require.NoError(t, writeSignal(&buf, y))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(y))

	got, err := readColumn(&buf, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, y, got, "shortest 'g' formatting must round trip exactly")
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.csv")
	bPath := filepath.Join(dir, "bCoeff")
	outPath := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(dataPath, []byte("x,y\n1,10\n2,20\n"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte("0.5\n0.5\n"), 0o644))

	x, err := readColumnFile(dataPath, ",", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, x)

	b, err := readCoefficientFile(bPath)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, b)

	require.NoError(t, writeSignalFile(outPath, x))
	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "10\n20\n", string(content))

	_, err = readColumnFile(filepath.Join(dir, "missing"), "", 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open data file")

	err = writeSignalFile(filepath.Join(dir, "no", "such", "dir"), x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

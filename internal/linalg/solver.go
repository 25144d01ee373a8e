// Package linalg solves the small dense linear systems used to derive filter
// initial conditions.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular indicates a system with no unique solution.
	ErrSingular = errors.New("singular matrix")

	// ErrShape indicates a non-square matrix or a right-hand side of the wrong length.
	ErrShape = errors.New("dimension mismatch")
)

// Solver solves the square linear system K*x = r.
type Solver interface {
	Solve(k mat.Matrix, r []float64) ([]float64, error)
}

// QRSolver solves through a Householder QR factorization.
// Only an exactly singular triangular factor is reported as ErrSingular.
// A large but finite condition number still returns the computed solution.
type QRSolver struct{}

// Solve implements Solver.
func (QRSolver) Solve(k mat.Matrix, r []float64) ([]float64, error) {
	n, err := checkShape(k, r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	var qr mat.QR
	qr.Factorize(k)

	var x mat.VecDense
	rhs := mat.NewVecDense(n, append([]float64(nil), r...))
	if err := qr.SolveVecTo(&x, false, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}

	return append([]float64(nil), x.RawVector().Data...), nil
}

// GaussSolver solves by Gaussian elimination with partial pivoting.
type GaussSolver struct{}

// Solve implements Solver.
func (GaussSolver) Solve(k mat.Matrix, r []float64) ([]float64, error) {
	n, err := checkShape(k, r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	m := mat.DenseCopyOf(k)
	x := append([]float64(nil), r...)

	for col := range n {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m.At(row, col)) > math.Abs(m.At(pivot, col)) {
				pivot = row
			}
		}
		if m.At(pivot, col) == 0 {
			return nil, fmt.Errorf("%w: zero pivot in column %d", ErrSingular, col)
		}
		if pivot != col {
			swapRows(m, pivot, col)
			x[pivot], x[col] = x[col], x[pivot]
		}

		p := m.At(col, col)
		for row := col + 1; row < n; row++ {
			f := m.At(row, col) / p
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m.Set(row, c, m.At(row, c)-f*m.At(col, c))
			}
			x[row] -= f * x[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		s := x[row]
		for c := row + 1; c < n; c++ {
			s -= m.At(row, c) * x[c]
		}
		x[row] = s / m.At(row, row)
	}

	return x, nil
}

func swapRows(m *mat.Dense, i, j int) {
	ri := mat.Row(nil, i, m)
	rj := mat.Row(nil, j, m)
	m.SetRow(i, rj)
	m.SetRow(j, ri)
}

func checkShape(k mat.Matrix, r []float64) (int, error) {
	rows, cols := k.Dims()
	if rows != cols {
		return 0, fmt.Errorf("%w: matrix is %dx%d", ErrShape, rows, cols)
	}
	if rows != len(r) {
		return 0, fmt.Errorf("%w: matrix is %dx%d, rhs has %d entries", ErrShape, rows, cols, len(r))
	}
	return rows, nil
}

// SPDX-License-Identifier: MIT
// Package basis: dense rational Matrix with exact determinant and inverse.

package basis

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is an immutable dense matrix of exact rational entries, row-major.
// Construct through NewMatrix or FromInts; the zero value is invalid.
type Matrix struct {
	rows, cols int
	data       []*big.Rat // len rows*cols, never nil entries
}

// NewMatrix builds a Matrix from rows of big.Rat entries. Entries are
// deep-copied; nil entries read as zero. All rows must share one length.
// Returns ErrBadShape for empty or ragged input.
func NewMatrix(rows [][]*big.Rat) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m := &Matrix{rows: r, cols: c, data: make([]*big.Rat, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrBadShape)
		}
		for j, e := range row {
			if e == nil {
				m.data[i*c+j] = new(big.Rat)
				continue
			}
			m.data[i*c+j] = new(big.Rat).Set(e)
		}
	}

	return m, nil
}

// FromInts builds a Matrix from integer rows. Convenience for tests and
// hand-written transforms.
func FromInts(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	rat := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rat[i] = make([]*big.Rat, len(row))
		for j, e := range row {
			rat[i][j] = big.NewRat(e, 1)
		}
	}

	return NewMatrix(rat)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: n, cols: n, data: make([]*big.Rat, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.data[i*n+j] = big.NewRat(1, 1)
				continue
			}
			m.data[i*n+j] = new(big.Rat)
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the column count.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m != nil && m.rows == m.cols }

// At returns a copy of the entry at (i, j), or ErrOutOfRange.
func (m *Matrix) At(i, j int) (*big.Rat, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return new(big.Rat).Set(m.data[i*m.cols+j]), nil
}

// MulVec returns M·v as a fresh slice of exact rationals.
// Returns ErrShapeMismatch when len(v) != Cols. Nil vector entries read as 0.
// Complexity: O(rows·cols).
func (m *Matrix) MulVec(v []*big.Rat) ([]*big.Rat, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != m.cols {
		return nil, fmt.Errorf("vector length %d, want %d: %w", len(v), m.cols, ErrShapeMismatch)
	}
	out := make([]*big.Rat, m.rows)
	term := new(big.Rat)
	for i := 0; i < m.rows; i++ {
		sum := new(big.Rat)
		for j := 0; j < m.cols; j++ {
			if v[j] == nil {
				continue
			}
			sum.Add(sum, term.Mul(m.data[i*m.cols+j], v[j]))
		}
		out[i] = sum
	}

	return out, nil
}

// Det returns the exact determinant via cofactor expansion along the first
// row. Returns ErrNonSquare for rectangular matrices.
func (m *Matrix) Det() (*big.Rat, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}

	return m.det(), nil
}

// Inverse returns the exact inverse computed as adjugate/determinant.
// Returns ErrNonSquare for rectangular input and ErrSingularMatrix when the
// determinant is zero. The receiver is never mutated.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}
	det := m.det()
	if det.Sign() == 0 {
		return nil, ErrSingularMatrix
	}
	n := m.rows
	inv := &Matrix{rows: n, cols: n, data: make([]*big.Rat, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// adjugate: entry (i,j) is the (j,i) cofactor.
			cof := m.minor(j, i).det()
			if (i+j)%2 != 0 {
				cof.Neg(cof)
			}
			inv.data[i*n+j] = cof.Quo(cof, det)
		}
	}

	return inv, nil
}

// Mul returns the exact product m·o.
// Returns ErrShapeMismatch when m.Cols != o.Rows.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if m.cols != o.rows {
		return nil, fmt.Errorf("%dx%d by %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrShapeMismatch)
	}
	out := &Matrix{rows: m.rows, cols: o.cols, data: make([]*big.Rat, m.rows*o.cols)}
	term := new(big.Rat)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			sum := new(big.Rat)
			for k := 0; k < m.cols; k++ {
				sum.Add(sum, term.Mul(m.data[i*m.cols+k], o.data[k*o.cols+j]))
			}
			out.data[i*o.cols+j] = sum
		}
	}

	return out, nil
}

// Equal reports exact entry-wise equality of shape and values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the matrix row by row with exact rational entries.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.cols+j].RatString())
		}
		sb.WriteByte(']')
		if i+1 < m.rows {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// det computes the determinant of a known-square matrix.
// Base cases up to 2x2, then first-row cofactor expansion on minors.
func (m *Matrix) det() *big.Rat {
	n := m.rows
	switch n {
	case 0:
		return big.NewRat(1, 1) // empty product; keeps 1x1 inversion correct
	case 1:
		return new(big.Rat).Set(m.data[0])
	case 2:
		ad := new(big.Rat).Mul(m.data[0], m.data[3])
		bc := new(big.Rat).Mul(m.data[1], m.data[2])

		return ad.Sub(ad, bc)
	}
	sum := new(big.Rat)
	for j := 0; j < n; j++ {
		if m.data[j].Sign() == 0 {
			continue // zero entry contributes nothing; skip the minor
		}
		term := m.minor(0, j).det()
		term.Mul(term, m.data[j])
		if j%2 != 0 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}

	return sum
}

// minor returns the submatrix with row i and column j removed.
// Entries are shared, not copied: minors are internal and short-lived.
func (m *Matrix) minor(i, j int) *Matrix {
	n := m.rows
	sub := &Matrix{rows: n - 1, cols: n - 1, data: make([]*big.Rat, 0, (n-1)*(n-1))}
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			sub.data = append(sub.data, m.data[r*n+c])
		}
	}

	return sub
}

// Package matrix implements the Matrix payload: a dense grid of rationals.
package matrix

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/theflywheel/chash/payload"
	"github.com/theflywheel/chash/rational"
)

var (
	// ErrInvalidDimensions is returned for matrices with a non-positive side.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange is returned when a cell index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Matrix is a rows x cols grid of rationals stored in row-major order.
type Matrix struct {
	rows  int
	cols  int
	cells []rational.Rational
}

// HeaderSize is the fixed size of a Matrix value, excluding its cells.
var HeaderSize = int(unsafe.Sizeof(Matrix{}))

// New returns a rows x cols matrix with every cell set to 0.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	m := &Matrix{rows: rows, cols: cols, cells: make([]rational.Rational, rows*cols)}
	for i := range m.cells {
		m.cells[i].Bottom = 1
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.cells[i*n+i].Top = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) (rational.Rational, error) {
	if !m.inRange(i, j) {
		return rational.Rational{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	return m.cells[i*m.cols+j], nil
}

// Set stores r at row i, column j.
func (m *Matrix) Set(i, j int, r rational.Rational) error {
	if !m.inRange(i, j) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	m.cells[i*m.cols+j] = r
	return nil
}

// Add returns the element-wise sum m + o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := &Matrix{rows: m.rows, cols: m.cols, cells: make([]rational.Rational, len(m.cells))}
	for i := range m.cells {
		sum, err := m.cells[i].Add(&o.cells[i])
		if err != nil {
			return nil, err
		}
		out.cells[i] = *sum
	}
	return out, nil
}

// Mul returns the matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out, err := New(m.rows, o.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			acc := rational.Int(0)
			for k := 0; k < m.cols; k++ {
				p, err := m.cells[i*m.cols+k].Mul(&o.cells[k*o.cols+j])
				if err != nil {
					return nil, err
				}
				if acc, err = acc.Add(p); err != nil {
					return nil, err
				}
			}
			out.cells[i*o.cols+j] = *acc
		}
	}
	return out, nil
}

// Equal reports whether m and o have the same shape and equal cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols || len(m.cells) != len(o.cells) {
		return false
	}
	for i := range m.cells {
		if !m.cells[i].Equal(&o.cells[i]) {
			return false
		}
	}
	return true
}

// Kind implements payload.Value.
func (m *Matrix) Kind() payload.Kind { return payload.Matrix }

// Size implements payload.Value. Cells are not counted.
func (m *Matrix) Size() int { return HeaderSize }

// Clone implements payload.Value. The cells are copied, not shared.
func (m *Matrix) Clone() payload.Value {
	c := &Matrix{rows: m.rows, cols: m.cols}
	if m.cells != nil {
		c.cells = make([]rational.Rational, len(m.cells))
		copy(c.cells, m.cells)
	}
	return c
}

// Release implements payload.Releaser.
func (m *Matrix) Release() {
	m.cells = nil
	m.rows, m.cols = 0, 0
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.cells[i*m.cols+j].String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula col + row*columns.
//   - Keep a single owner per buffer: every derived matrix is a fresh allocation.
//   - Treat index violations as caller errors: accessors panic with a wrapped ErrOutOfRange.
//
// Complexity quicksheet:
//   - New/From: O(r*c); Get/Set: O(1); Row: O(c); Column: O(r); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxGet    = "Get"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxColumn = "Column"
	ctxNew    = "New"
)

// Matrix is a dense rows×columns matrix of T stored row-major.
//   - values holds rows*columns elements; offset(row, col) = col + row*columns.
//   - The zero value is a legal 0×0 matrix.
type Matrix[T any] struct {
	rows, columns int // shape (>= 0)
	values        []T // contiguous row-major storage (len == rows*columns)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a rows×columns matrix filled with T's zero value.
// Panics with ErrBadShape on negative dimensions or when rows*columns
// overflows int.
// Complexity: O(r*c).
func New[T any](rows, columns int) *Matrix[T] {
	if rows < 0 || columns < 0 {
		panic(denseErrorf(ctxNew, rows, columns, ErrBadShape))
	}
	if columns != 0 && rows > math.MaxInt/columns {
		panic(denseErrorf(ctxNew, rows, columns, ErrBadShape))
	}

	return &Matrix[T]{
		rows:    rows,
		columns: columns,
		values:  make([]T, rows*columns), // make() zero-fills deterministically
	}
}

// From converts (rows, columns, values) into a matrix.
// MAIN DESCRIPTION:
//   - Copy values in row-major order (column varies fastest).
//
// Behavior highlights:
//   - A short source is padded with T's zero value.
//   - A long source is truncated; extra elements are ignored.
//   - Neither case is an error.
//
// Inputs:
//   - rows, columns: non-negative dimensions.
//   - values: source elements; never retained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Example:
//
//	m := matrix.From(3, 3, []int{1, 2, 3})
//	m.Values() // [1 2 3 0 0 0 0 0 0]
func From[T any](rows, columns int, values []T) *Matrix[T] {
	m := New[T](rows, columns)
	copy(m.values, values) // copies min(len) elements; remaining slots stay zero

	return m
}

// FromRows builds a matrix from row literals, e.g. [][]int{{1, 2}, {3, 4}}.
// Every row must have the same length; otherwise ErrBadShape is returned.
// An empty input yields a 0×0 matrix.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	columns := len(rows[0])
	m := New[T](len(rows), columns)
	for i, row := range rows {
		if len(row) != columns {
			return nil, matrixErrorf(fmt.Sprintf("FromRows: row %d has %d columns, want %d", i, len(row), columns), ErrBadShape)
		}
		copy(m.values[i*columns:(i+1)*columns], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Columns returns the column count. Complexity: O(1).
func (m *Matrix[T]) Columns() int { return m.columns }

// Size packs Rows() and Columns() into a Size value.
func (m *Matrix[T]) Size() Size { return Size{Rows: m.rows, Columns: m.columns} }

// Len returns the number of cells.
func (m *Matrix[T]) Len() int { return len(m.values) }

// offset computes the row-major offset or reports ErrOutOfRange.
// Keep unexported: public accessors decide how to surface the violation.
func (m *Matrix[T]) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.columns {
		return 0, ErrOutOfRange
	}

	return col + row*m.columns, nil
}

// mustOffset is offset for public accessors: a violation panics with the
// method context and coordinates wrapped around ErrOutOfRange.
func (m *Matrix[T]) mustOffset(method string, row, col int) int {
	off, err := m.offset(row, col)
	if err != nil {
		panic(denseErrorf(method, row, col, err))
	}

	return off
}

// Get returns the element at (row, col).
// MAIN DESCRIPTION:
//   - Bounds-checked read from the flat buffer.
//
// Behavior highlights:
//   - Out-of-range indices are a caller error and panic with an error
//     wrapping ErrOutOfRange; validate against Rows()/Columns() first.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Get(row, col int) T {
	return m.values[m.mustOffset(ctxGet, row, col)]
}

// Set stores v at (row, col). Panics like Get on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.values[m.mustOffset(ctxSet, row, col)] = v
}

// Row returns a copy of row i. Panics with ErrOutOfRange if i is invalid.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(lineErrorf(ctxRow, i, ErrOutOfRange))
	}
	out := make([]T, m.columns)
	copy(out, m.values[i*m.columns:(i+1)*m.columns])

	return out
}

// Column returns a copy of column j. Panics with ErrOutOfRange if j is invalid.
// Complexity: O(r), strided reads.
func (m *Matrix[T]) Column(j int) []T {
	if j < 0 || j >= m.columns {
		panic(lineErrorf(ctxColumn, j, ErrOutOfRange))
	}
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.values[j+i*m.columns]
	}

	return out
}

// Values returns a copy of the flat row-major buffer.
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.values))
	copy(out, m.values)

	return out
}

// Clone returns a deep copy; mutations of either matrix never affect the other.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, columns: m.columns, values: m.Values()}
}

// Equal reports whether a and b have the same shape and the same elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.columns != b.columns {
		return false
	}
	for i := range a.values {
		if a.values[i] != b.values[i] {
			return false
		}
	}

	return true
}

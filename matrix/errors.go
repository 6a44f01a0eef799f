// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the small wrapping
// helpers used across the package. Operations return these sentinels wrapped
// with an operation tag; tests MUST check them via errors.Is.
//
// Index violations are caller errors: Get/Set/Row/Column panic with a value
// that wraps ErrOutOfRange, so a recover() site can still use errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf/denseErrorf at the
// detection site; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions, or ragged rows in FromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Multiply where a.Columns != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with the Matrix method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps err with the Matrix method context and a single row or column index.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}

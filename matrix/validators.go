// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Fails if rows OR columns differ. Assumes both are non-nil.
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Rows %d != %d", a.rows, b.rows), ErrDimensionMismatch)
	}
	if a.columns != b.columns {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Columns %d != %d", a.columns, b.columns), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs ValidateNotNil on both operands, then ValidateSameShape.
func ValidateBinarySameShape[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks a and b are non-nil and a.Columns() == b.Rows().
func ValidateMulCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.columns != b.rows {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.rows, a.columns, b.rows, b.columns), ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Describe the capability sets an element type must provide for the
//     combining kernels: Monoid for Add, Semiring for Multiply and Scale.
//   - Ship stock instances for built-in numbers, strings and the tropical
//     (min, +) semiring.
//
// Notes:
//   - Identity is an explicit method, never a literal 0: Concat needs "" and
//     MinPlus needs +Inf.

package matrix

import "math"

// Monoid is the "add" capability: an associative Combine with an Identity.
type Monoid[T any] interface {
	// Identity returns the neutral element of Combine.
	Identity() T
	// Combine merges two elements (addition, concatenation, min, ...).
	Combine(a, b T) T
}

// Semiring extends Monoid with the "multiply" capability used by
// MultiplyWith and ScaleWith.
type Semiring[T any] interface {
	Monoid[T]
	// Product multiplies two elements.
	Product(a, b T) T
}

// Numeric is the ordinary (0, +, *) semiring over built-in numbers.
type Numeric[T Number] struct{}

// Identity returns 0.
func (Numeric[T]) Identity() T {
	var zero T
	return zero
}

// Combine returns a + b.
func (Numeric[T]) Combine(a, b T) T { return a + b }

// Product returns a * b.
func (Numeric[T]) Product(a, b T) T { return a * b }

// Concat is the string monoid ("" and concatenation).
type Concat[T ~string] struct{}

// Identity returns the empty string.
func (Concat[T]) Identity() T { return "" }

// Combine returns a followed by b.
func (Concat[T]) Combine(a, b T) T { return a + b }

// MinPlus is the tropical semiring: Combine is min, Product is +, and the
// identity is +Inf. Multiplying an edge-weight matrix by itself over MinPlus
// relaxes every path by one hop.
type MinPlus[T Float] struct{}

// Identity returns +Inf.
func (MinPlus[T]) Identity() T { return T(math.Inf(1)) }

// Combine returns min(a, b).
func (MinPlus[T]) Combine(a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Product returns a + b.
func (MinPlus[T]) Product(a, b T) T { return a + b }

// Compile-time assertions.
var (
	_ Semiring[float64] = Numeric[float64]{}
	_ Monoid[string]    = Concat[string]{}
	_ Semiring[float64] = MinPlus[float64]{}
)

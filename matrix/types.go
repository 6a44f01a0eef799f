// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and its kernels.
// This file contains ONLY value types (Position, Size) and the element-type
// constraints. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// Position addresses one cell by zero-based row and column.
type Position struct {
	Row    int // zero-based row index
	Column int // zero-based column index
}

// Size describes a matrix shape.
type Size struct {
	Rows    int
	Columns int
}

// Dimensions returns the number of rows and columns.
func (s Size) Dimensions() (rows, columns int) { return s.Rows, s.Columns }

// Len returns the number of cells (Rows*Columns).
func (s Size) Len() int { return s.Rows * s.Columns }

// Integer is the set of built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Number is every element kind with native +, - and * operators.
// Its zero value is the additive identity.
type Number interface {
	Integer | Float | Complex
}

// Addable is every element kind with a native + operator. For strings the
// operator concatenates and "" is the identity.
type Addable interface {
	Number | ~string
}

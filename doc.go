// Package lvmatrix is a small, generic dense-matrix library.
//
// What is in the box?
//
//	One subpackage, matrix, built around Matrix[T]:
//		• Construction: From (row-major, zero-padded), New, FromRows
//		• Access: Get/Set, Row/Column, Values, Clone
//		• Algebra: Transpose, Add (strings concatenate), Sub, Hadamard,
//		  Multiply, Scale, plus *With variants over Monoid/Semiring
//		• Inspection: All (iter.Seq2), Do, String/Format
//
// Why lvmatrix?
//
//   - One flat row-major buffer per matrix, one owner, no views.
//   - Explicit errors for shape mismatches (errors.Is friendly).
//   - Element types beyond numbers via explicit capability sets.
//
// Quick example:
//
//	a := matrix.From(3, 3, []int{1, 4, 7, 2, 5, 8, 3, 6, 9})
//	p, err := matrix.Multiply(a, a.Transpose())
//
// See examples/ for a logged walkthrough.
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix

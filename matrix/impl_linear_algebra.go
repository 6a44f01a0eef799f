// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over *Matrix[T]:
// transpose, element-wise addition (and its Sub/Hadamard siblings), matrix
// multiplication and scalar scaling. All functions perform strict fail-fast
// validation and return wrapped sentinels on dimension mismatches.
//
// Purpose:
//   - Two flavours per combining op: a native-operator fast path constrained
//     to built-in kinds (Add, Multiply, Scale) and a capability-set path for
//     any element type (AddWith, MultiplyWith, ScaleWith).
//   - Operands are never mutated; every result is a fresh allocation.
//
// Notes:
//   - Multiply transposes b once so both operands are walked as contiguous
//     row-major chunks; no strided reads in the inner loop.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opMul      = "Multiply"
	opScale    = "Scale"
)

// Transpose returns a new Columns()×Rows() matrix with res[c][r] = m[r][c].
// The receiver is never mutated; Transpose is an involution.
//
// Implementation:
//   - Stage 1: allocate the flipped shape.
//   - Stage 2: walk the source row by row, scattering into result columns.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	res := New[T](m.columns, m.rows)

	var i, j, baseSrc int
	for i = 0; i < m.rows; i++ {
		baseSrc = i * m.columns
		for j = 0; j < m.columns; j++ {
			// m[i][j] → res[j][i]; res has m.rows columns.
			res.values[i+j*m.rows] = m.values[baseSrc+j]
		}
	}

	return res
}

// zipWith computes out[i] = f(a[i], b[i]) over two same-shape operands.
// Shared by Add/AddWith/Sub/Hadamard so validation and allocation live in one place.
func zipWith[T any](opTag string, a, b *Matrix[T], f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := New[T](a.rows, a.columns)
	for idx := range res.values { // deterministic 0..n-1
		res.values[idx] = f(a.values[idx], b.values[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// For string element types "+" concatenates, so C[i] = A[i] ++ B[i].
//
// Errors:
//   - ErrNilMatrix (nil operand).
//   - ErrDimensionMismatch when rows or columns differ; no partial result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Addable](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// AddWith is Add for arbitrary element types, combining cells with alg.Combine.
func AddWith[T any](alg Monoid[T], a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opAdd, a, b, alg.Combine)
}

// Sub computes the element-wise difference C = A - B under Add's shape contract.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Hadamard computes the element-wise product C = A ⊙ B under Add's shape contract.
// Hadamard is not matrix multiplication; use Multiply for A×B.
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opHadamard, a, b, func(x, y T) T { return x * y })
}

// mulRows drives C = A × B given bt = Bᵀ.
// For each (i, j) it hands the contiguous row i of A and row j of Bᵀ
// (both of length A.Columns()) to dot.
func mulRows[T any](a, bt *Matrix[T], dot func(x, y []T) T) *Matrix[T] {
	n := a.columns
	res := New[T](a.rows, bt.rows)

	var i, j int
	var rowA []T
	for i = 0; i < a.rows; i++ {
		rowA = a.values[i*n : (i+1)*n]
		for j = 0; j < bt.rows; j++ {
			res.values[j+i*bt.rows] = dot(rowA, bt.values[j*n:(j+1)*n])
		}
	}

	return res
}

// Multiply performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - C[i][j] = Σ_k A[i][k] * B[k][j], folded from T's zero value.
//
// Implementation:
//   - Stage 1: validate non-nil operands and A.Columns() == B.Rows().
//   - Stage 2: transpose B once; dot row i of A against row j of Bᵀ.
//
// Returns:
//   - *Matrix[T] with shape A.Rows() × B.Columns().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for the result and Bᵀ.
func Multiply[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulRows(a, b.Transpose(), func(x, y []T) T {
		var acc T // additive identity
		for k := range x {
			acc += x[k] * y[k]
		}
		return acc
	}), nil
}

// MultiplyWith is Multiply over a caller-supplied semiring: each cell is
// folded from alg.Identity() with Combine(acc, Product(a, b)).
// Over MinPlus this computes one round of shortest-path relaxation.
func MultiplyWith[T any](alg Semiring[T], a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulRows(a, b.Transpose(), func(x, y []T) T {
		acc := alg.Identity()
		for k := range x {
			acc = alg.Combine(acc, alg.Product(x[k], y[k]))
		}
		return acc
	}), nil
}

// Scale returns k * m. Only a nil m fails (ErrNilMatrix); shape is preserved.
// Complexity: O(r*c).
func Scale[T Number](k T, m *Matrix[T]) (*Matrix[T], error) {
	return scaleBy(m, func(v T) T { return k * v })
}

// ScaleWith returns alg.Product(k, m[i]) for every cell.
func ScaleWith[T any](alg Semiring[T], k T, m *Matrix[T]) (*Matrix[T], error) {
	return scaleBy(m, func(v T) T { return alg.Product(k, v) })
}

func scaleBy[T any](m *Matrix[T], f func(v T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := New[T](m.rows, m.columns)
	for idx, v := range m.values {
		res.values[idx] = f(v)
	}

	return res, nil
}

// Package matrix offers a generic dense two-dimensional matrix.
//
// The matrix package provides:
//
//   - Matrix[T], a row-major flat buffer with O(1) Get/Set and copy-out
//     Row/Column accessors.
//   - Transpose, element-wise Add (Sub, Hadamard), Multiply and Scale, each
//     returning a freshly allocated result.
//   - Capability sets (Monoid, Semiring) so non-numeric element types can be
//     combined: strings add by concatenation, MinPlus multiplies as a
//     tropical semiring.
//   - Lazy row-major iteration (All, Do) and bracketed diagnostic formatting.
//
// Shape errors (ErrDimensionMismatch, ErrNilMatrix) are returned; index
// violations are caller errors and panic with a value wrapping ErrOutOfRange.
//
// Matrices hold no locks. Concurrent reads are safe; Set needs exclusive access.
package matrix

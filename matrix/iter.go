// SPDX-License-Identifier: MIT

package matrix

import "iter"

// All returns a lazy sequence of (position, element) pairs in row-major
// order: row 0 columns 0..C-1, then row 1, and so on.
//
// The position comes first and the element second, following the key/value
// order of iter.Seq2 (as in maps.All or slices.All), so a loop reads
// "for pos, v := range m.All()".
//
// The sequence is finite and restartable: every range over it starts from
// (0,0) with its own cursor, so independent loops over the same matrix never
// interfere. Breaking out of the loop stops the walk. The matrix is not
// mutated.
//
// Example:
//
//	for pos, v := range m.All() {
//		fmt.Println(pos.Row, pos.Column, v)
//	}
func (m *Matrix[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for idx, v := range m.values {
			if !yield(Position{Row: idx / m.columns, Column: idx % m.columns}, v) {
				return
			}
		}
	}
}

// Do visits each element in row-major order and calls f(pos, v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Do(f func(pos Position, v T) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.columns
		for j = 0; j < m.columns; j++ {
			if !f(Position{Row: i, Column: j}, m.values[base+j]) {
				return
			}
		}
	}
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// String renders one line per row, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging; not a stable serialization format.
func (m *Matrix[T]) String() string {
	return m.Format()
}

// Format renders the matrix row by row using the given options
// (see WithVerb, WithSeparator, WithBrackets). Every row ends with "\n".
// Complexity: O(r*c).
func (m *Matrix[T]) Format(opts ...Option) string {
	o := gatherOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(o.rowOpen)
		base = i * m.columns
		for j = 0; j < m.columns; j++ {
			fmt.Fprintf(&b, o.verb, m.values[base+j])
			if j+1 < m.columns {
				b.WriteString(o.separator)
			}
		}
		b.WriteString(o.rowClose)
		b.WriteByte('\n')
	}

	return b.String()
}

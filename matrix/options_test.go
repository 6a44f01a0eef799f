// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that an empty option list equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Verb != matrix.DefaultVerb {
		t.Fatalf("verb default mismatch: got %q, want %q", o.Verb, matrix.DefaultVerb)
	}
	if o.Separator != matrix.DefaultSeparator {
		t.Fatalf("separator default mismatch: got %q, want %q", o.Separator, matrix.DefaultSeparator)
	}
	if o.RowOpen != matrix.DefaultRowOpen || o.RowClose != matrix.DefaultRowClose {
		t.Fatalf("bracket default mismatch: got %q %q", o.RowOpen, o.RowClose)
	}
}

// 2) TestGatherOptions_LastWins ensures later options override earlier ones.
func TestGatherOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithSeparator(";"),
		matrix.WithVerb("%d"),
		matrix.WithSeparator("|"),
	)
	require.Equal(t, "|", o.Separator)
	require.Equal(t, "%d", o.Verb)
	require.Equal(t, matrix.DefaultRowOpen, o.RowOpen, "untouched fields keep defaults")
}

// 3) TestWithBrackets_SetsBoth ensures both row delimiters are replaced together.
func TestWithBrackets_SetsBoth(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithBrackets("(", ")"))
	require.Equal(t, "(", o.RowOpen)
	require.Equal(t, ")", o.RowClose)
}

// 4) TestWithVerb_PanicMessage pins the programmer-error message.
func TestWithVerb_PanicMessage(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicVerbEmpty_TestOnly, func() { matrix.WithVerb("") })
}

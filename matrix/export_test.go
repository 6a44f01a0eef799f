// SPDX-License-Identifier: MIT

package matrix

// Test-bridge (white-box) for the internal options snapshot.
//
// Purpose:
//   - Expose a read-only view of the unexported Options to matrix_test ONLY.
//   - Lives in a _test.go file, so it never widens the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options; tests will catch drift.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Verb      string
	Separator string
	RowOpen   string
	RowClose  string
}

// PanicVerbEmpty_TestOnly exports the WithVerb panic message.
const PanicVerbEmpty_TestOnly = panicVerbEmpty

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Verb:      o.verb,
		Separator: o.separator,
		RowOpen:   o.rowOpen,
		RowClose:  o.rowClose,
	}
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Turn accessor panics back into errors so tests can match sentinels.

package matrix_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows BUILDS a matrix from row literals or fails the test.
func MustFromRows[T any](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// RandomFill FILLS m with deterministic U(-1,1) values by seed.
func RandomFill(m *matrix.Matrix[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Columns(); j++ {
			m.Set(i, j, rng.Float64()*2-1)
		}
	}
}

// recoverErr RUNS f and returns the error value it panicked with (nil if f returned).
// Non-error panic values are converted with fmt.Errorf so tests still fail cleanly.
func recoverErr(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("non-error panic: %v", r)
	}()
	f()

	return nil
}

// RequirePanicsWith ASSERTS that f panics with an error matching target via errors.Is.
func RequirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	err := recoverErr(f)
	require.Error(t, err, "expected panic wrapping %v", target)
	require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
}

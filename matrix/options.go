// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for diagnostic formatting.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb is the fmt verb applied to every element ("display form").
	DefaultVerb = "%v"

	// DefaultSeparator is written between elements of one row.
	DefaultSeparator = ", "

	// DefaultRowOpen and DefaultRowClose bracket every row.
	DefaultRowOpen  = "["
	DefaultRowClose = "]"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbEmpty = "matrix: WithVerb: verb must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	verb      string // DefaultVerb
	separator string // DefaultSeparator
	rowOpen   string // DefaultRowOpen
	rowClose  string // DefaultRowClose
}

// WithVerb sets the fmt verb used for each element, e.g. "%6.2f" or "%q".
// Panics on an empty verb.
func WithVerb(verb string) Option {
	if verb == "" {
		panic(panicVerbEmpty)
	}

	return func(o *Options) { o.verb = verb }
}

// WithSeparator sets the text written between elements of a row.
// An empty separator is legal.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithBrackets sets the text written before and after every row.
func WithBrackets(openRow, closeRow string) Option {
	return func(o *Options) {
		o.rowOpen = openRow
		o.rowClose = closeRow
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		verb:      DefaultVerb,
		separator: DefaultSeparator,
		rowOpen:   DefaultRowOpen,
		rowClose:  DefaultRowClose,
	}
}

// gatherOptions applies user options over the defaults, left to right.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

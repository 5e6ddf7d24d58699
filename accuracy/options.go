// SPDX-License-Identifier: MIT

// Package accuracy: functional configuration for report labelling.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options never change the numbers: the estimator, the z value and the
// variance formulas are fixed. They only attach labels that consumers
// rendering a Report rely on.
package accuracy

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAreaUnit labels AreaEstimate values when no unit is configured.
	DefaultAreaUnit = "px"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicClassNameEmpty = "accuracy: WithClassNames: names must be non-blank"
	panicAreaUnitEmpty  = "accuracy: WithAreaUnit: unit must be non-blank"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	classNames []string // nil ⇒ classes are labelled by index
	areaUnit   string   // DefaultAreaUnit
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{areaUnit: DefaultAreaUnit}
}

// WithClassNames labels classes in input order. The number of names must
// equal the number of classes (checked by the estimator, ErrDimensionMismatch).
// Panics on a blank name (programmer error).
func WithClassNames(names ...string) Option {
	cp := make([]string, len(names))
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			panic(panicClassNameEmpty)
		}
		cp[i] = n
	}

	return func(o *Options) { o.classNames = cp }
}

// WithAreaUnit names the unit of the per-pixel area passed to the estimator
// (e.g. "ha"). Panics on a blank unit.
func WithAreaUnit(unit string) Option {
	if strings.TrimSpace(unit) == "" {
		panic(panicAreaUnitEmpty)
	}

	return func(o *Options) { o.areaUnit = unit }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

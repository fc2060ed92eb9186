// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and random fill.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior when asked for: WithRand pins the random stream.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand/v2"

// ---------- Defaults (single source of truth) ----------

const (
	// MaxNameLen is the name bound in bytes INCLUDING the terminator byte
	// written by the binary format. Usable name length is MaxNameLen-1.
	MaxNameLen = 50

	// DefaultMaxElements caps rows*cols for a single matrix (64 MiB of uint32).
	// Requests above the cap fail with ErrAllocation instead of exhausting memory.
	DefaultMaxElements = 1 << 24

	// ElementBits is the bit width of one element.
	ElementBits = 32
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be > 0"
	panicRandNil            = "matrix: WithRand: nil *rand.Rand"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxElements uint64     // DefaultMaxElements
	rng         *rand.Rand // nil ⇒ package-level math/rand/v2 source
}

// WithMaxElements overrides the rows*cols cap checked by New.
// Panics if limit == 0 (programmer error).
func WithMaxElements(limit uint64) Option {
	if limit == 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = limit }
}

// WithRand makes RandomFill draw from r instead of the global source.
// Use a seeded generator (rand.New(rand.NewPCG(seed, seed))) for reproducible fills.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect the effective configuration (e.g., registry passing limits through).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxElements returns the effective element cap.
func (o Options) MaxElements() uint64 { return o.maxElements }

func defaultOptions() Options {
	return Options{maxElements: DefaultMaxElements}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// uniform returns a value uniformly drawn from [low, high] (inclusive).
// The span is computed in uint64 so the full uint32 range does not overflow.
func (o Options) uniform(low, high uint32) uint32 {
	span := uint64(high) - uint64(low) + 1
	if o.rng != nil {
		return low + uint32(o.rng.Uint64N(span))
	}

	return low + uint32(rand.Uint64N(span))
}

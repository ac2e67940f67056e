// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import "math/rand"

// scriptedPlatform is a test-only Platform that replays a fixed sequence
// of timer readings, falling back to a monotonic extrapolation once the
// script is exhausted. It lets tests pin down exactly which call in the
// self-test's call sequence returns which value, which a wall-clock-backed
// Platform cannot guarantee.
type scriptedPlatform struct {
	values []uint64
	idx    int
	fips   bool
}

func (p *scriptedPlatform) ReadMonotonicNanos() uint64 {
	var v uint64
	switch {
	case p.idx < len(p.values):
		v = p.values[p.idx]
	case len(p.values) > 0:
		tail := uint64(p.idx - len(p.values) + 1)
		v = p.values[len(p.values)-1] + tail*1000 + (tail%7)*97
	default:
		v = uint64(p.idx+1) * 1000
	}
	p.idx++
	return v
}

func (p *scriptedPlatform) FIPSEnabled() bool { return p.fips }

// monotonicValues returns n strictly increasing values with irregular
// gaps, seeded deterministically off step. A constant gap between samples
// would make the stuck detector's second derivative identically zero from
// the third sample onward (genEntropy would then loop forever retrying a
// permanently "stuck" measurement), so increments are drawn from a seeded
// PRNG rather than a fixed stride.
func monotonicValues(n int, step uint64) []uint64 {
	values := make([]uint64, n)
	rng := rand.New(rand.NewSource(int64(step) + 1))
	var t uint64
	for i := range values {
		t += step + uint64(rng.Int63n(int64(step)+1))
		values[i] = t
	}
	return values
}

// zeroPlatform always reads zero, exercising ErrNoTime.
type zeroPlatform struct{}

func (zeroPlatform) ReadMonotonicNanos() uint64 { return 0 }
func (zeroPlatform) FIPSEnabled() bool          { return false }

// stallPlatform returns a fixed, non-advancing value, exercising
// ErrCoarseTime (a zero delta between any two reads).
type stallPlatform struct{ value uint64 }

func (p stallPlatform) ReadMonotonicNanos() uint64 { return p.value }
func (stallPlatform) FIPSEnabled() bool            { return false }

// forcedFIPSPlatform wraps another Platform but always reports FIPS mode
// active, regardless of the wrapped platform's own answer.
type forcedFIPSPlatform struct {
	Platform
}

func (forcedFIPSPlatform) FIPSEnabled() bool { return true }

// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import (
	"os"
	"time"
)

// Platform is the set of host hooks the jitter-entropy core requires (C1).
// Implementations must be safe for use by a single Collector; the core
// never calls a Platform concurrently from more than one goroutine.
type Platform interface {
	// ReadMonotonicNanos returns a monotonically non-decreasing timer
	// reading with at least nanosecond resolution. A return value of
	// zero is treated by Init as a broken timer.
	ReadMonotonicNanos() uint64

	// FIPSEnabled reports whether the host enforces FIPS 140-style
	// continuous testing of the collector's output.
	FIPSEnabled() bool
}

// defaultPlatform is the stdlib-backed Platform used when a Collector is
// constructed without WithPlatform. It is not itself a substitute for a
// genuine hardware FIPS indicator; see DESIGN.md.
type defaultPlatform struct{}

// monotonicEpoch is set once at package initialization and never
// modified; defaultPlatform measures elapsed monotonic time from it.
var monotonicEpoch = time.Now()

// ReadMonotonicNanos reads the Go runtime's monotonic clock: the
// monotonic time elapsed since monotonicEpoch, offset by the wall-clock
// time of monotonicEpoch so that no reading is zero.
func (defaultPlatform) ReadMonotonicNanos() uint64 {
	return uint64(monotonicEpoch.UnixNano()) + uint64(time.Since(monotonicEpoch))
}

// fipsModeEnvVar is consulted by defaultPlatform.FIPSEnabled as a
// stand-in for a genuine platform FIPS-mode probe, which no library in
// this module's dependency stack exposes. Hosts that need a real signal
// should supply their own Platform via WithPlatform.
const fipsModeEnvVar = "CONTINENT_FIPS_MODE"

// FIPSEnabled reports whether CONTINENT_FIPS_MODE is set to a non-empty
// value.
func (defaultPlatform) FIPSEnabled() bool {
	return os.Getenv(fipsModeEnvVar) != ""
}

// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import "errors"

// Errors returned by Init. A non-nil error from Init means the host
// platform's timer is unfit to drive the jitter noise sources; the core
// must not be used to produce entropy until the underlying condition is
// resolved.
var (
	// ErrNoTime is returned when the platform clock reads zero.
	ErrNoTime = errors.New("jitterentropy: platform timer returned zero")

	// ErrCoarseTime is returned when the platform clock lacks the
	// resolution required to observe jitter between back-to-back reads.
	ErrCoarseTime = errors.New("jitterentropy: platform timer resolution too coarse")

	// ErrNonMonotonic is returned when the platform clock runs backwards
	// more often than the tolerance allowed for NTP/adjtime skew.
	ErrNonMonotonic = errors.New("jitterentropy: platform timer is not sufficiently monotonic")

	// ErrMinVariance is returned when successive time deltas vary too
	// little to support an entropy estimate.
	ErrMinVariance = errors.New("jitterentropy: insufficient timer delta variance")

	// ErrStuck is returned when too many samples during the self-test
	// are flagged stuck by the stuck detector.
	ErrStuck = errors.New("jitterentropy: too many stuck samples during self-test")
)

// Errors returned by Collector.Read.
var (
	// ErrNilCollector is returned by Read when called on a nil *Collector.
	ErrNilCollector = errors.New("jitterentropy: nil collector")

	// ErrHealthTest is returned by Read when the FIPS-mode continuous
	// test observes two identical consecutive pool words. The caller
	// must discard any bytes already written to its buffer.
	ErrHealthTest = errors.New("jitterentropy: continuous health test failed")
)

// ErrAlloc is returned by NewCollector when the memory-access noise
// source's backing buffer cannot be allocated.
var ErrAlloc = errors.New("jitterentropy: collector allocation failed")

// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package jitterentropy implements a non-physical true random number
// generator that harvests entropy from the timing jitter of a CPU
// executing a fixed, optimization-resistant workload.
//
// Two noise sources feed the pool: a bit-serial Fibonacci LFSR fold of a
// high-resolution monotonic timestamp, and a memory-access pattern chosen
// to miss the L1 cache. Each 64-bit pool word is produced by oversampling
// these noise sources, rejecting any measurement whose first, second, or
// third discrete time-delta derivative is zero (a "stuck" sample). When
// the host reports FIPS mode active, a continuous test additionally
// rejects two identical consecutive pool words.
//
// This package does not whiten, condition, or compress its output beyond
// the inherent LFSR mixing, and it is not a DRBG: every output bit is
// driven by a fresh jitter measurement, not a seed expansion. Callers
// whose policy requires a conditioner should apply one downstream.
//
// A Collector is not safe for concurrent use. Call Init once per process
// before constructing any Collector, to validate that the host's timer is
// fit to drive these noise sources.
package jitterentropy

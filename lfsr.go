// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import "sync/atomic"

// lfsrFold folds a 64-bit timestamp into the collector's entropy pool
// bit-by-bit via a primitive Fibonacci LFSR (C3).
//
// This is simultaneously the folding operation and the workload whose
// execution time is measured by the caller. The outer loop and the
// bit-serial inner shift must execute exactly as written -- do not
// restructure this function to "simplify" the bit extraction or to batch
// the XOR-taps, even though the work is expressible more densely. Any
// change here invalidates the jitter measurements this package depends on
// and must be re-validated against lfsr_test.go's timing-spread check.
//
// loopCnt, if non-zero, overrides the loop-shuffled iteration count.
// Non-zero values are used only by tests; measureJitter and Init pass 0.
//
// Returns the number of outer iterations actually performed.
//
//go:noinline
func lfsrFold(ec *Collector, timeVal uint64, loopCnt uint64) uint64 {
	foldLoopCnt := loopShuffle(ec.platform, &ec.data, maxFoldLoopBit, minFoldLoopBit)
	if loopCnt != 0 {
		foldLoopCnt = loopCnt
	}

	var newVal uint64
	for j := uint64(0); j < foldLoopCnt; j++ {
		newVal = ec.data

		for i := uint(1); i <= DataSizeBits; i++ {
			tmp := timeVal << (DataSizeBits - i)
			tmp >>= DataSizeBits - 1

			// Fibonacci LFSR with primitive polynomial
			// x^64 + x^61 + x^56 + x^31 + x^28 + x^23 + 1 (tap
			// positions below are the polynomial's exponents minus
			// one, since bits are counted from zero).
			tmp ^= (newVal >> 63) & 1
			tmp ^= (newVal >> 60) & 1
			tmp ^= (newVal >> 55) & 1
			tmp ^= (newVal >> 30) & 1
			tmp ^= (newVal >> 27) & 1
			tmp ^= (newVal >> 22) & 1

			newVal <<= 1
			newVal ^= tmp
		}

		// The per-iteration result is routed through an atomic store
		// to the collector's own sink field, never a package-level
		// variable: a plain local assigned in a loop and never read
		// back out can be proven dead and folded away by an
		// optimizing compiler, which would collapse the timing
		// signal this function is measured by. The sink lives on the
		// collector (not a shared global) so that concurrently
		// running collectors on separate goroutines never observe
		// each other's fold state -- this package keeps no mutable
		// state outside of a Collector.
		atomic.StoreUint64(&ec.sink, newVal)
	}

	ec.data = atomic.LoadUint64(&ec.sink)
	return foldLoopCnt
}

// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

// measureJitter samples the platform timer, computes the delta from the
// previous sample, folds that delta into the pool via the LFSR noise
// source, and reports whether the sample was stuck (C5).
//
// ec.prevTime must be primed before the return value of this function is
// trusted: the very first call after construction establishes prevTime
// and its stuck verdict is meaningless by definition.
func measureJitter(ec *Collector) bool {
	// Invoke the memory-access noise source first so its jitter
	// contributes variance to the interval being measured.
	memAccess(ec, 0)

	t := ec.platform.ReadMonotonicNanos()
	currentDelta := t - ec.prevTime
	ec.prevTime = t

	lfsrFold(ec, currentDelta, 0)

	return stuck(ec, currentDelta)
}

// stuck flags a jitter measurement whose 1st, 2nd, or 3rd discrete
// derivative is zero (C6). It is a deterministic function of
// currentDelta and the collector's running delta history, which it
// updates in place.
func stuck(ec *Collector, currentDelta uint64) bool {
	delta2 := ec.lastDelta - int64(currentDelta)
	delta3 := delta2 - ec.lastDelta2

	ec.lastDelta = int64(currentDelta)
	ec.lastDelta2 = delta2

	return currentDelta == 0 || delta2 == 0 || delta3 == 0
}

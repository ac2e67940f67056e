// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

// memAccess performs the memory-access noise source (C4): touching a
// large buffer with a stride chosen to miss L1, generating cache-miss
// jitter. Returns 0 without touching memory if the collector's memory
// buffer is absent (either FlagDisableMemoryAccess was set at
// construction, or ec is nil).
//
// loopCnt, if non-zero, overrides the loop-shuffled access count. Used
// only by tests; measureJitter passes 0, and Init does not call memAccess.
func memAccess(ec *Collector, loopCnt uint64) uint64 {
	if ec == nil || ec.mem == nil {
		return 0
	}

	accLoopCnt := loopShuffle(ec.platform, &ec.data, maxAccLoopBit, minAccLoopBit)
	if loopCnt != 0 {
		accLoopCnt = loopCnt
	}

	wrap := ec.memBlockSize * ec.memBlocks
	total := ec.memAccessLoops + accLoopCnt

	var i uint64
	for ; i < total; i++ {
		ec.mem[ec.memLocation] = (ec.mem[ec.memLocation] + 1) & 0xff

		// Advance by blockSize-1 with wraparound so every block is
		// visited with low collision before the stride repeats,
		// maximizing cache-miss variance.
		ec.memLocation = (ec.memLocation + ec.memBlockSize - 1) % wrap
	}

	return i
}

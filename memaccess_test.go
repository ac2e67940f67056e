// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemAccess_NilCollectorReturnsZero(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	is.Equal(uint64(0), memAccess(nil, 0))
}

func TestMemAccess_DisabledReturnsZero(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ec := &Collector{platform: &scriptedPlatform{}}
	is.Nil(ec.mem)
	is.Equal(uint64(0), memAccess(ec, 0))
}

func TestMemAccess_TouchesMemoryAndAdvances(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ec := &Collector{
		platform:       &scriptedPlatform{},
		mem:            make([]byte, 16*4),
		memBlockSize:   16,
		memBlocks:      4,
		memAccessLoops: 10,
	}

	got := memAccess(ec, 0)
	is.Equal(ec.memAccessLoops+referenceLoopCountFor(ec), got)

	touched := false
	for _, b := range ec.mem {
		if b != 0 {
			touched = true
			break
		}
	}
	is.True(touched, "memAccess should have incremented at least one byte")
	is.Less(ec.memLocation, ec.memBlockSize*ec.memBlocks)
}

func TestMemAccess_OverrideLoopCount(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ec := &Collector{
		platform:       &scriptedPlatform{},
		mem:            make([]byte, 8*2),
		memBlockSize:   8,
		memBlocks:      2,
		memAccessLoops: 3,
	}

	got := memAccess(ec, 5)
	is.Equal(uint64(8), got) // memAccessLoops(3) + override(5)
}

// referenceLoopCountFor recomputes the loop-shuffled access count the way
// memAccess does internally, for a collector whose platform has not yet
// been advanced by the call under test.
func referenceLoopCountFor(ec *Collector) uint64 {
	return referenceShuffle((&scriptedPlatform{}).ReadMonotonicNanos(), &ec.data, maxAccLoopBit, minAccLoopBit)
}

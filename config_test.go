// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DefaultConfig(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cfg := DefaultConfig()
	is.Equal(DefaultMemoryBlockSize, cfg.MemoryBlockSize)
	is.Equal(DefaultMemoryBlocks, cfg.MemoryBlocks)
	is.Equal(DefaultMemoryAccessLoops, cfg.MemoryAccessLoops)
	is.IsType(defaultPlatform{}, cfg.Platform)
}

func TestConfig_WithPlatform(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	fake := &scriptedPlatform{}
	cfg := DefaultConfig()
	WithPlatform(fake)(&cfg)
	is.Same(fake, cfg.Platform)
}

func TestConfig_WithMemoryParameters(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cfg := DefaultConfig()
	WithMemoryParameters(16, 8, 4)(&cfg)
	is.Equal(uint64(16), cfg.MemoryBlockSize)
	is.Equal(uint64(8), cfg.MemoryBlocks)
	is.Equal(uint64(4), cfg.MemoryAccessLoops)
}

func TestFlag_Bits(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.NotEqual(FlagDisableStir, FlagDisableUnbias)
	is.NotEqual(FlagDisableUnbias, FlagDisableMemoryAccess)
	is.NotEqual(FlagDisableMemoryAccess, FlagSecureMemory)
}

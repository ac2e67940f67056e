// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

// DataSizeBits is the width, in bits, of the entropy pool (§3: `data`).
const DataSizeBits = 64

// Default memory-access noise source (C4) geometry. The total size
// (MemoryBlockSize * MemoryBlocks) deliberately exceeds a typical L1 data
// cache so that the access stride forces cache misses.
const (
	DefaultMemoryBlockSize   uint64 = 64
	DefaultMemoryBlocks      uint64 = 512 // 64 * 512 = 32 KiB
	DefaultMemoryAccessLoops uint64 = 128
)

// Flag is a bitmask of collector configuration toggles, supplied to
// NewCollector.
type Flag uint32

const (
	// FlagDisableStir is accepted for configuration parity with the
	// reference implementation. No code path in this package currently
	// acts on it; see DESIGN.md.
	FlagDisableStir Flag = 1 << iota

	// FlagDisableUnbias is accepted for configuration parity with the
	// reference implementation. No code path in this package currently
	// acts on it; see DESIGN.md.
	FlagDisableUnbias

	// FlagDisableMemoryAccess suppresses allocation of the memory-access
	// noise source's backing buffer and disables C4 entirely.
	FlagDisableMemoryAccess

	// FlagSecureMemory skips the post-read pool scrub performed by
	// Collector.Read, under the assumption that the host already
	// protects the pool via secure memory. It is a pure policy toggle;
	// the core does not itself distinguish secure from normal memory.
	FlagSecureMemory
)

// Config holds the non-secret, immutable configuration used to construct a
// Collector. It is built from DefaultConfig plus any Option values passed
// to NewCollector, and is not itself exported as mutable state.
type Config struct {
	// Platform supplies the monotonic clock and FIPS-mode probe the
	// collector reads from. Defaults to defaultPlatform{}.
	Platform Platform

	// MemoryBlockSize and MemoryBlocks together size the memory-access
	// noise source's backing buffer. Unused when FlagDisableMemoryAccess
	// is set.
	MemoryBlockSize uint64
	MemoryBlocks    uint64

	// MemoryAccessLoops is the fixed number of memory-touch iterations
	// performed per measurement, independent of the loop-shuffled
	// addition computed by loopShuffle.
	MemoryAccessLoops uint64
}

// DefaultConfig returns a Config populated with the package's documented
// defaults: the stdlib-backed default Platform and the default memory
// geometry.
func DefaultConfig() Config {
	return Config{
		Platform:          defaultPlatform{},
		MemoryBlockSize:   DefaultMemoryBlockSize,
		MemoryBlocks:      DefaultMemoryBlocks,
		MemoryAccessLoops: DefaultMemoryAccessLoops,
	}
}

// Option is a functional option that customizes a Config.
type Option func(*Config)

// WithPlatform overrides the Platform hooks used by a Collector. Intended
// for hosts supplying a real FIPS-mode probe, and for tests that need to
// script a specific timer sequence.
func WithPlatform(p Platform) Option {
	return func(cfg *Config) { cfg.Platform = p }
}

// WithMemoryParameters overrides the memory-access noise source's buffer
// geometry and per-measurement access count. Has no effect when
// FlagDisableMemoryAccess is set on the collector being constructed.
func WithMemoryParameters(blockSize, blocks, accessLoops uint64) Option {
	return func(cfg *Config) {
		cfg.MemoryBlockSize = blockSize
		cfg.MemoryBlocks = blocks
		cfg.MemoryAccessLoops = accessLoops
	}
}

// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

// Collector is one independent entropy stream (§3). A Collector is not
// safe for concurrent use: every measurement mutates its state, so each
// producer goroutine must own its own Collector. Multiple Collectors may
// run in parallel on distinct goroutines, each with its own memory
// buffer; this package keeps no mutable state outside of a Collector.
type Collector struct {
	platform Platform

	// data is the 64-bit entropy pool, continually updated by the LFSR
	// noise source. Observable by callers only via Read's byte copy.
	data uint64

	// sink is lfsrFold's compiler-optimization-barrier target; see
	// lfsr.go.
	sink uint64

	// prevTime is the timestamp of the most recent jitter measurement.
	// Its zero value is only ever observed before the first
	// measurement, whose delta is therefore primed away.
	prevTime uint64

	// lastDelta and lastDelta2 are the stuck detector's running delta
	// history (C6).
	lastDelta  int64
	lastDelta2 int64

	// mem is the memory-access noise source's backing buffer. Nil when
	// FlagDisableMemoryAccess was set at construction.
	mem            []byte
	memLocation    uint64
	memBlockSize   uint64
	memBlocks      uint64
	memAccessLoops uint64

	// osr is the oversampling rate: DataSizeBits*osr non-stuck
	// measurements are required per generated pool word.
	osr uint32

	// stir and disableUnbias are accepted for configuration parity with
	// the reference implementation; no code path acts on them (§9a).
	stir          bool
	disableUnbias bool
	secureMemory  bool

	// fips and oldData/oldDataSet back the continuous health test (C8).
	fips       fipsState
	oldData    uint64
	oldDataSet bool
}

// NewCollector allocates, primes, and returns a new Collector (C10).
//
// osr is the oversampling rate; zero is treated as 1. flags configures
// the memory-access noise source, reserved stir/unbias bits, and the
// post-read scrub policy. Options customize the Platform hooks and the
// memory-access noise source's buffer geometry.
//
// NewCollector primes the pool by running a full, discarded genEntropy
// pass before returning, so Collector.data is non-zero (with overwhelming
// probability) as soon as this function returns.
func NewCollector(osr uint32, flags Flag, opts ...Option) (*Collector, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ec := &Collector{platform: cfg.Platform}

	if flags&FlagDisableMemoryAccess == 0 {
		if cfg.MemoryBlockSize == 0 || cfg.MemoryBlocks == 0 {
			return nil, ErrAlloc
		}
		ec.mem = make([]byte, cfg.MemoryBlockSize*cfg.MemoryBlocks)
		ec.memBlockSize = cfg.MemoryBlockSize
		ec.memBlocks = cfg.MemoryBlocks
		ec.memAccessLoops = cfg.MemoryAccessLoops
	}

	if osr == 0 {
		osr = 1
	}
	ec.osr = osr

	ec.stir = flags&FlagDisableStir == 0
	ec.disableUnbias = flags&FlagDisableUnbias != 0
	ec.secureMemory = flags&FlagSecureMemory != 0

	genEntropy(ec)

	return ec, nil
}

// Read fills p with jitter-derived entropy (C9) and returns len(p), nil
// on success.
//
// Read on a nil Collector returns ErrNilCollector. If the FIPS-mode
// continuous test trips, Read returns ErrHealthTest and the contents of p
// are undefined; the caller must discard them. Unless the collector was
// constructed with FlagSecureMemory, Read performs one additional,
// discarded generation pass after the last byte is copied out, so that a
// post-mortem memory dump of the pool never reveals output the caller
// received.
func (ec *Collector) Read(p []byte) (int, error) {
	if ec == nil {
		return 0, ErrNilCollector
	}

	origLen := len(p)
	remaining := p

	for len(remaining) > 0 {
		genEntropy(ec)
		if err := fipsTest(ec); err != nil {
			return 0, err
		}

		tocopy := 8
		if len(remaining) < tocopy {
			tocopy = len(remaining)
		}

		// Byte copy uses the native word-byte order of the pool; the
		// output is a byte stream, not a fixed numeric encoding.
		word := ec.data
		for i := 0; i < tocopy; i++ {
			remaining[i] = byte(word)
			word >>= 8
		}

		remaining = remaining[tocopy:]
	}

	if !ec.secureMemory {
		genEntropy(ec)
	}

	return origLen, nil
}

// Close zero-wipes the collector's entropy pool, delta history, and
// memory-access buffer, then releases the memory buffer reference (C10
// free). A Collector must not be used after Close.
func (ec *Collector) Close() {
	if ec == nil {
		return
	}

	ec.data = 0
	ec.sink = 0
	ec.prevTime = 0
	ec.lastDelta = 0
	ec.lastDelta2 = 0
	ec.oldData = 0
	ec.oldDataSet = false

	for i := range ec.mem {
		ec.mem[i] = 0
	}
	ec.mem = nil
	ec.memLocation = 0
}

// OversamplingRate returns the collector's configured oversampling rate.
func (ec *Collector) OversamplingRate() uint32 {
	return ec.osr
}

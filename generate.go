// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package jitterentropy

// fipsState is the tri-state FIPS continuous-test status tracked per
// Collector (§3 `fips_enabled`). It is modeled as a small closed enum
// rather than an interface hierarchy, following the way the pack's own
// config layers encode closed state machines as typed constants.
type fipsState uint8

const (
	// fipsUnknown means the platform's FIPS mode has not yet been
	// probed.
	fipsUnknown fipsState = iota

	// fipsEnabled means the platform reported FIPS mode active; the
	// continuous test (C8) is engaged.
	fipsEnabled

	// fipsDisabled means the platform reported FIPS mode off; the
	// continuous test is permanently skipped for this collector.
	fipsDisabled
)

// genEntropy oversamples the jitter measurement to produce one 64-bit
// pool word per request unit (C7).
//
// It primes ec.prevTime with a throwaway measurement, then repeats
// measureJitter until DataSizeBits*ec.osr non-stuck measurements have
// been observed. On return, ec.data holds the freshly generated word.
func genEntropy(ec *Collector) {
	// Prime prevTime; the stuck verdict of this first call is
	// meaningless and intentionally discarded.
	measureJitter(ec)

	var k uint32
	for {
		if measureJitter(ec) {
			continue
		}

		k++
		if k >= DataSizeBits*ec.osr {
			return
		}
	}
}

// fipsTest is the FIPS 140-style continuous test (C8): it rejects
// consecutive identical pool outputs once FIPS mode is engaged, and
// automatically primes itself on first use.
func fipsTest(ec *Collector) error {
	if ec.fips == fipsDisabled {
		return nil
	}

	if ec.fips == fipsUnknown {
		if !ec.platform.FIPSEnabled() {
			ec.fips = fipsDisabled
			return nil
		}
		ec.fips = fipsEnabled
	}

	if !ec.oldDataSet {
		ec.oldData = ec.data
		ec.oldDataSet = true
		genEntropy(ec)
	}

	if ec.data == ec.oldData {
		return ErrHealthTest
	}

	ec.oldData = ec.data
	return nil
}

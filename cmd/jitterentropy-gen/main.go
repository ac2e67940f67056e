// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	jitterentropy "github.com/jmiller-soft/continent"
)

type opts struct {
	count            int
	osr              uint32
	hexOutput        bool
	skipSelfTest     bool
	disableMemAccess bool
	secureMemory     bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "jitterentropy-gen",
		Short: "Emit CPU-jitter-derived entropy bytes to stdout",
		Long: `jitterentropy-gen runs the platform self-test and a single collector to
produce raw entropy bytes from CPU execution-time jitter.

It is a demonstration of the core library's external interface, not a
replacement for a system CSPRNG: the output is not whitened, conditioned,
or mixed into any DRBG, and the tool should not be used as a sole entropy
source for cryptographic key material.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(o)
		},
	}

	root.Flags().IntVarP(&o.count, "count", "n", 32, "number of entropy bytes to emit")
	root.Flags().Uint32Var(&o.osr, "osr", 1, "oversampling rate")
	root.Flags().BoolVar(&o.hexOutput, "hex", false, "print bytes as hex instead of raw binary")
	root.Flags().BoolVar(&o.skipSelfTest, "skip-selftest", false, "skip the platform self-test before collecting")
	root.Flags().BoolVar(&o.disableMemAccess, "disable-memory-access", false, "disable the memory-access noise source")
	root.Flags().BoolVar(&o.secureMemory, "secure-memory", false, "skip the post-read pool-discard pass")

	if err := root.Execute(); err != nil {
		slog.Error("jitterentropy-gen failed", "error", err)
		os.Exit(1)
	}
}

func run(o opts) error {
	if o.count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", o.count)
	}

	if !o.skipSelfTest {
		if err := jitterentropy.Init(); err != nil {
			return fmt.Errorf("platform self-test failed: %w", err)
		}
	}

	var flags jitterentropy.Flag
	if o.disableMemAccess {
		flags |= jitterentropy.FlagDisableMemoryAccess
	}
	if o.secureMemory {
		flags |= jitterentropy.FlagSecureMemory
	}

	ec, err := jitterentropy.NewCollector(o.osr, flags)
	if err != nil {
		return fmt.Errorf("constructing collector: %w", err)
	}
	defer ec.Close()

	buf := make([]byte, o.count)
	if _, err := ec.Read(buf); err != nil {
		return fmt.Errorf("reading entropy: %w", err)
	}

	if o.hexOutput {
		fmt.Println(hex.EncodeToString(buf))
		return nil
	}

	if _, err := os.Stdout.Write(buf); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Package simex provides uniform access to collections of simulated 2-D
// diffraction patterns stored in hierarchical (HDF5) containers.
//
// The package answers three questions about a dataset without loading pixel
// data — how many patterns it holds, what shape they share, and which beam
// and geometry parameters produced them — and retrieves arbitrary subsets of
// patterns addressed by a flexible index specification.
//
// # Quick Start
//
//	d, _ := simex.Open("diffr.h5")
//	defer d.Close()
//
//	total, _ := d.PatternTotal()
//	height, width, _ := d.PatternShape()
//
//	// Eager retrieval: materialize a subset.
//	patterns, _ := d.Read(ctx, "2:5", false)
//
//	// Lazy retrieval: one pattern per pull, constant memory.
//	for p, err := range d.Stream(ctx, nil, false) {
//	    if err != nil {
//	        break
//	    }
//	    process(p)
//	}
//
// # Index Specifications
//
// Read, Stream and Resolve accept any of: nil (all patterns), a single
// 0-based index as int or numeric string, a half-open [start, end) range as
// a two-element pair, or a "start:end" colon string. Every resolved index is
// bounds-checked; out-of-range and empty selections fail with ErrOutOfRange
// instead of being clamped.
//
// # Poisson Noise
//
// Both retrieval modes optionally pass each pattern through a Poisson
// shot-noise transform, replacing every pixel intensity with a draw whose
// rate is that intensity. Seed it with WithNoiseSeed for reproducible
// output.
package simex

package simex

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/JunCEEE/SimEx-Lite/pattern"
)

// Poissonizer applies photon shot noise to a pattern: every pixel intensity
// v >= 0 is replaced by one independent draw from a Poisson distribution
// with rate v.
//
// Given a fixed random source the output is deterministic; no other
// component touches the source. A pixel with rate 0 always yields 0.
type Poissonizer struct {
	src rand.Source
}

// NewPoissonizer creates a Poissonizer over the given random source. A nil
// source falls back to time-based seeding.
func NewPoissonizer(src rand.Source) *Poissonizer {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Poissonizer{src: src}
}

// Apply returns a fresh pattern with Poisson-resampled intensities. The
// input is not modified.
func (pz *Poissonizer) Apply(p *pattern.Pattern) *pattern.Pattern {
	out := pattern.New(p.Height, p.Width)
	for i, v := range p.Data {
		if v == 0 {
			continue
		}
		out.Data[i] = distuv.Poisson{Lambda: v, Src: pz.src}.Rand()
	}
	return out
}

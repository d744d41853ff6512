// Package source generates synthetic singfel-format diffraction datasets.
//
// It stands in for the external simulation engine when fixtures or example
// data are needed: patterns are a Gaussian envelope around the detector
// center with per-pattern speckle, which is enough to exercise the data
// access layer without any physics.
package source

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/JunCEEE/SimEx-Lite/params"
	"github.com/JunCEEE/SimEx-Lite/pattern"
	"github.com/JunCEEE/SimEx-Lite/store"
)

// DefaultParameters returns the parameter set of the synthetic source with
// its default values.
func DefaultParameters() *params.Collection {
	c := params.NewCollection()

	c.New("num_patterns", "Number of patterns to generate.", "").SetValue(13)
	c.New("height", "Number of detector rows.", "pixel").SetValue(81)
	c.New("width", "Number of detector columns.", "pixel").SetValue(81)
	c.New("photon_energy", "The photon energy of the X-ray beam.", "eV").SetValue(4960.0)
	c.New("photons", "Photons per pulse.", "").SetValue(1e12)
	c.New("focus_area", "Beam focus area.", "m^2").SetValue(1e-12)
	c.New("peak_intensity", "Mean intensity at the detector center.", "photons").SetValue(100.0)
	c.New("envelope_width", "Gaussian envelope width.", "pixel").SetValue(12.0)
	c.New("detector_dist", "Sample to detector distance.", "m").SetValue(0.13)
	c.New("pixel_size", "Detector pixel pitch.", "m").SetValue(2e-4)

	return c
}

// Synthetic produces diffraction patterns from its parameter set.
type Synthetic struct {
	// Parameters configures the generator; see DefaultParameters.
	Parameters *params.Collection

	src *rand.Rand
}

// NewSynthetic creates a synthetic source with default parameters and a
// deterministic random stream derived from seed.
func NewSynthetic(seed uint64) *Synthetic {
	return &Synthetic{
		Parameters: DefaultParameters(),
		src:        rand.New(rand.NewSource(seed)),
	}
}

// Generate produces the configured number of patterns.
func (s *Synthetic) Generate() ([]*pattern.Pattern, error) {
	n, err := s.Parameters.MustGet("num_patterns").Int()
	if err != nil {
		return nil, err
	}
	height, err := s.Parameters.MustGet("height").Int()
	if err != nil {
		return nil, err
	}
	width, err := s.Parameters.MustGet("width").Int()
	if err != nil {
		return nil, err
	}
	peak, err := s.Parameters.MustGet("peak_intensity").Float()
	if err != nil {
		return nil, err
	}
	sigma, err := s.Parameters.MustGet("envelope_width").Float()
	if err != nil {
		return nil, err
	}
	if n < 0 || height <= 0 || width <= 0 || sigma <= 0 {
		return nil, fmt.Errorf("invalid generator configuration: n=%d shape=(%d, %d) envelope=%g", n, height, width, sigma)
	}

	patterns := make([]*pattern.Pattern, n)
	for i := range patterns {
		patterns[i] = s.generateOne(height, width, peak, sigma)
	}
	return patterns, nil
}

// WriteTo generates the patterns and writes them, together with the beam and
// geometry parameters, as a singfel-format container at path.
func (s *Synthetic) WriteTo(path string) error {
	patterns, err := s.Generate()
	if err != nil {
		return err
	}

	meta, err := s.storeParameters()
	if err != nil {
		return err
	}
	return store.WriteSingFEL(path, patterns, meta)
}

func (s *Synthetic) generateOne(height, width int, peak, sigma float64) *pattern.Pattern {
	p := pattern.New(height, width)
	cy := float64(height-1) / 2
	cx := float64(width-1) / 2

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			dy := float64(r) - cy
			dx := float64(c) - cx
			envelope := peak * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			// Per-pixel speckle in [0.5, 1.5) keeps patterns distinct
			// between exposures while preserving the envelope.
			p.Set(r, c, envelope*(0.5+s.src.Float64()))
		}
	}
	return p
}

func (s *Synthetic) storeParameters() (store.Parameters, error) {
	var meta store.Parameters
	var err error

	if meta.Beam.PhotonEnergy, err = s.Parameters.MustGet("photon_energy").Float(); err != nil {
		return store.Parameters{}, err
	}
	if meta.Beam.Photons, err = s.Parameters.MustGet("photons").Float(); err != nil {
		return store.Parameters{}, err
	}
	if meta.Beam.FocusArea, err = s.Parameters.MustGet("focus_area").Float(); err != nil {
		return store.Parameters{}, err
	}
	if meta.Geometry.DetectorDist, err = s.Parameters.MustGet("detector_dist").Float(); err != nil {
		return store.Parameters{}, err
	}
	pixel, err := s.Parameters.MustGet("pixel_size").Float()
	if err != nil {
		return store.Parameters{}, err
	}
	meta.Geometry.PixelWidth = pixel
	meta.Geometry.PixelHeight = pixel

	return meta, nil
}

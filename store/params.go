package store

import "github.com/JunCEEE/SimEx-Lite/pattern"

// BeamParameters describes the X-ray beam that produced a dataset.
type BeamParameters struct {
	PhotonEnergy float64 // eV
	Photons      float64 // photons per pulse
	FocusArea    float64 // m^2
}

// GeomParameters describes the detector geometry of a dataset.
type GeomParameters struct {
	DetectorDist float64          // m
	PixelWidth   float64          // m
	PixelHeight  float64          // m
	Mask         *pattern.Pattern // optional per-pixel detector mask
}

// Parameters is the metadata block stored alongside the patterns in a
// singfel container.
type Parameters struct {
	Beam     BeamParameters
	Geometry GeomParameters
}

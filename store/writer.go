package store

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/JunCEEE/SimEx-Lite/pattern"
)

// WriteSingFEL writes patterns and parameters to a new singfel-format HDF5
// container at path. Record groups are keyed 1-based with the zero-padded
// ordinal scheme read back by OpenSingFEL.
//
// The writer exists for fixtures and synthetic datasets; production data
// comes from the simulation engine.
func WriteSingFEL(path string, patterns []*pattern.Pattern, params Parameters) error {
	f, err := hdf5.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := writeSingFELContent(f, patterns, params); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSingFELContent(f *hdf5.File, patterns []*pattern.Pattern, params Parameters) error {
	data, err := f.Root().CreateGroup(dataGroupName)
	if err != nil {
		return fmt.Errorf("creating /data: %w", err)
	}

	for i, p := range patterns {
		record, err := data.CreateGroup(fmt.Sprintf("%07d", i+1))
		if err != nil {
			return fmt.Errorf("creating record group %d: %w", i+1, err)
		}
		if _, err := record.CreateDataset(diffrDatasetName, p.Rows()); err != nil {
			return fmt.Errorf("writing pattern %d: %w", i, err)
		}
	}

	paramsGroup, err := f.Root().CreateGroup("params")
	if err != nil {
		return fmt.Errorf("creating /params: %w", err)
	}

	beam, err := paramsGroup.CreateGroup("beam")
	if err != nil {
		return fmt.Errorf("creating /params/beam: %w", err)
	}
	beamScalars := []struct {
		name  string
		value float64
		unit  string
	}{
		{"photonEnergy", params.Beam.PhotonEnergy, "eV"},
		{"photons", params.Beam.Photons, ""},
		{"focusArea", params.Beam.FocusArea, "m^2"},
	}
	for _, s := range beamScalars {
		if err := writeScalar(beam, s.name, s.value, s.unit); err != nil {
			return err
		}
	}

	geom, err := paramsGroup.CreateGroup("geom")
	if err != nil {
		return fmt.Errorf("creating /params/geom: %w", err)
	}
	geomScalars := []struct {
		name  string
		value float64
		unit  string
	}{
		{"detectorDist", params.Geometry.DetectorDist, "m"},
		{"pixelWidth", params.Geometry.PixelWidth, "m"},
		{"pixelHeight", params.Geometry.PixelHeight, "m"},
	}
	for _, s := range geomScalars {
		if err := writeScalar(geom, s.name, s.value, s.unit); err != nil {
			return err
		}
	}

	if params.Geometry.Mask != nil {
		if _, err := geom.CreateDataset("mask", params.Geometry.Mask.Rows()); err != nil {
			return fmt.Errorf("writing mask: %w", err)
		}
	}

	return nil
}

func writeScalar(g *hdf5.Group, name string, value float64, unit string) error {
	opts := []hdf5.DatasetOption{}
	if unit != "" {
		opts = append(opts, hdf5.WithAttribute("unit", unit))
	}
	if _, err := g.CreateDataset(name, []float64{value}, opts...); err != nil {
		return fmt.Errorf("writing parameter %s: %w", name, err)
	}
	return nil
}

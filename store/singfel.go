package store

import (
	"fmt"
	"sort"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/JunCEEE/SimEx-Lite/format"
	"github.com/JunCEEE/SimEx-Lite/pattern"
)

// Container layout of a singfel multi-pattern file. Pattern records live in
// one group per exposure, keyed by a 1-based zero-padded ordinal:
//
//	/data/0000001/diffr    float64 [height, width]
//	/params/beam/...       scalar beam parameters
//	/params/geom/...       scalar geometry parameters (+ optional mask)
const (
	dataGroupName    = "data"
	diffrDatasetName = "diffr"
	beamGroupPath    = "params/beam"
	geomGroupPath    = "params/geom"
)

// SingFEL is a PatternStore backed by a singfel-format HDF5 container.
// Gzip-compressed containers (e.g. "*.h5.gz") are staged to a temporary file
// that is removed on Close.
type SingFEL struct {
	path    string
	file    *hdf5.File
	names   []string // sorted children of /data; zero-padded, so lexical order == ordinal order
	cleanup func() error
}

var _ PatternStore = (*SingFEL)(nil)

// OpenSingFEL opens a singfel-format container for reading.
func OpenSingFEL(path string) (*SingFEL, error) {
	local, cleanup, err := format.Localize(path)
	if err != nil {
		return nil, err
	}

	f, err := hdf5.Open(local)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	data, err := f.OpenGroup(dataGroupName)
	if err != nil {
		f.Close()
		cleanup()
		return nil, fmt.Errorf("%w: no /data group in %s", ErrMissingMetadata, path)
	}

	names, err := data.Members()
	if err != nil {
		f.Close()
		cleanup()
		return nil, fmt.Errorf("%w: listing /data in %s: %v", ErrMissingMetadata, path, err)
	}
	sort.Strings(names)

	return &SingFEL{path: path, file: f, names: names, cleanup: cleanup}, nil
}

// Path returns the path this store was opened from.
func (s *SingFEL) Path() string {
	return s.path
}

// Count returns the number of pattern records under /data.
func (s *SingFEL) Count() (int, error) {
	return len(s.names), nil
}

// Shape returns the stored dimensions of the first pattern record. Only the
// dataspace is inspected; no pixel data is read.
func (s *SingFEL) Shape() (int, int, error) {
	if len(s.names) == 0 {
		return 0, 0, fmt.Errorf("%w: %s holds no pattern records", ErrMissingMetadata, s.path)
	}

	ds, err := s.file.OpenDataset(s.recordPath(0))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrMissingMetadata, s.recordPath(0), err)
	}

	dims := ds.Shape()
	if len(dims) != 2 {
		return 0, 0, fmt.Errorf("%w: pattern %s has rank %d, want 2", ErrMissingMetadata, s.recordPath(0), len(dims))
	}
	return int(dims[0]), int(dims[1]), nil
}

// Pattern reads the pixel array of record i into a fresh pattern.
func (s *SingFEL) Pattern(i int) (*pattern.Pattern, error) {
	if i < 0 || i >= len(s.names) {
		return nil, fmt.Errorf("%w: record %d of %d in %s", ErrNotFound, i, len(s.names), s.path)
	}

	ds, err := s.file.OpenDataset(s.recordPath(i))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, s.recordPath(i), err)
	}

	dims := ds.Shape()
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: pattern %s has rank %d, want 2", ErrNotFound, s.recordPath(i), len(dims))
	}

	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.recordPath(i), err)
	}
	return pattern.FromData(int(dims[0]), int(dims[1]), data)
}

// Parameters reads the beam and geometry parameter groups.
func (s *SingFEL) Parameters() (Parameters, error) {
	var p Parameters

	var err error
	if p.Beam.PhotonEnergy, err = s.readScalar(beamGroupPath + "/photonEnergy"); err != nil {
		return Parameters{}, err
	}
	if p.Beam.Photons, err = s.readScalar(beamGroupPath + "/photons"); err != nil {
		return Parameters{}, err
	}
	if p.Beam.FocusArea, err = s.readScalar(beamGroupPath + "/focusArea"); err != nil {
		return Parameters{}, err
	}
	if p.Geometry.DetectorDist, err = s.readScalar(geomGroupPath + "/detectorDist"); err != nil {
		return Parameters{}, err
	}
	if p.Geometry.PixelWidth, err = s.readScalar(geomGroupPath + "/pixelWidth"); err != nil {
		return Parameters{}, err
	}
	if p.Geometry.PixelHeight, err = s.readScalar(geomGroupPath + "/pixelHeight"); err != nil {
		return Parameters{}, err
	}

	// The detector mask is optional.
	if mask, err := s.readMask(); err == nil {
		p.Geometry.Mask = mask
	}

	return p, nil
}

// Close closes the container and removes any staged temporary copy.
func (s *SingFEL) Close() error {
	err := s.file.Close()
	if cerr := s.cleanup(); err == nil {
		err = cerr
	}
	return err
}

func (s *SingFEL) recordPath(i int) string {
	return dataGroupName + "/" + s.names[i] + "/" + diffrDatasetName
}

func (s *SingFEL) readScalar(path string) (float64, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s", ErrMissingMetadata, path, s.path)
	}
	vals, err := ds.ReadFloat64()
	if err != nil || len(vals) == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrMissingMetadata, path, s.path)
	}
	return vals[0], nil
}

func (s *SingFEL) readMask() (*pattern.Pattern, error) {
	ds, err := s.file.OpenDataset(geomGroupPath + "/mask")
	if err != nil {
		return nil, err
	}
	dims := ds.Shape()
	if len(dims) != 2 {
		return nil, fmt.Errorf("mask has rank %d, want 2", len(dims))
	}
	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, err
	}
	return pattern.FromData(int(dims[0]), int(dims[1]), data)
}

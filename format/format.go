// Package format identifies the on-disk container wrapping a diffraction
// dataset and stages compressed containers into directly readable files.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// ErrUnknownFormat is returned when a file is neither an HDF5 container nor a
// gzip-wrapped one.
var ErrUnknownFormat = errors.New("unknown dataset format")

// Kind identifies the outer container format of a dataset file.
type Kind int

const (
	// KindUnknown means the file signature matched no supported container.
	KindUnknown Kind = iota
	// KindHDF5 is a plain HDF5 container.
	KindHDF5
	// KindGzip is a gzip-compressed container.
	KindGzip
)

func (k Kind) String() string {
	switch k {
	case KindHDF5:
		return "hdf5"
	case KindGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

var (
	hdf5Signature = []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}
	gzipSignature = []byte{0x1f, 0x8b}
)

// Sniff reads the file signature and reports the container kind. Only the
// leading bytes are read; no dataset content is touched.
func Sniff(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	header := make([]byte, len(hdf5Signature))
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return KindUnknown, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, hdf5Signature):
		return KindHDF5, nil
	case bytes.HasPrefix(header, gzipSignature):
		return KindGzip, nil
	default:
		return KindUnknown, nil
	}
}

// Localize returns a path to a plain HDF5 file for the given input. A plain
// container is returned as-is with a no-op cleanup. A gzip-wrapped container
// is decompressed into a temporary file; the returned cleanup removes it.
//
// The cleanup function must be called once the file is no longer needed.
func Localize(path string) (string, func() error, error) {
	kind, err := Sniff(path)
	if err != nil {
		return "", nil, err
	}

	switch kind {
	case KindHDF5:
		return path, func() error { return nil }, nil
	case KindGzip:
		local, err := gunzip(path)
		if err != nil {
			return "", nil, err
		}
		return local, func() error { return os.Remove(local) }, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func gunzip(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return "", fmt.Errorf("reading gzip header of %s: %w", path, err)
	}
	defer zr.Close()

	out, err := os.CreateTemp("", "simex-"+filepath.Base(path)+"-*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, zr); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", fmt.Errorf("decompressing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}

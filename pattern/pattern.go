// Package pattern defines the in-memory representation of a single 2-D
// diffraction image: a dense, row-major grid of floating-point intensities.
package pattern

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when pixel data does not match the declared shape.
var ErrShapeMismatch = errors.New("pattern shape mismatch")

// Pattern is one 2-D diffraction intensity image.
//
// Data is stored row-major with len(Data) == Height*Width. Intensities are
// expected to be non-negative; this is a caller contract and is not validated
// per pixel.
type Pattern struct {
	Height int
	Width  int
	Data   []float64
}

// New returns a zero-valued pattern of the given shape.
func New(height, width int) *Pattern {
	return &Pattern{
		Height: height,
		Width:  width,
		Data:   make([]float64, height*width),
	}
}

// FromData wraps an existing row-major pixel slice. The slice is not copied;
// the returned pattern takes ownership.
func FromData(height, width int, data []float64) (*Pattern, error) {
	if len(data) != height*width {
		return nil, fmt.Errorf("%w: %d pixels for shape (%d, %d)", ErrShapeMismatch, len(data), height, width)
	}
	return &Pattern{Height: height, Width: width, Data: data}, nil
}

// FromRows builds a pattern from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Pattern, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShapeMismatch)
	}
	width := len(rows[0])
	p := New(len(rows), width)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrShapeMismatch, r, len(row), width)
		}
		copy(p.Data[r*width:(r+1)*width], row)
	}
	return p, nil
}

// At returns the intensity at row r, column c.
func (p *Pattern) At(r, c int) float64 {
	return p.Data[r*p.Width+c]
}

// Set stores an intensity at row r, column c.
func (p *Pattern) Set(r, c int, v float64) {
	p.Data[r*p.Width+c] = v
}

// Sum returns the total intensity over all pixels.
func (p *Pattern) Sum() float64 {
	var total float64
	for _, v := range p.Data {
		total += v
	}
	return total
}

// Clone returns a deep copy that shares no storage with p.
func (p *Pattern) Clone() *Pattern {
	out := &Pattern{Height: p.Height, Width: p.Width, Data: make([]float64, len(p.Data))}
	copy(out.Data, p.Data)
	return out
}

// Equal reports whether two patterns have identical shape and bit-identical
// pixel values.
func (p *Pattern) Equal(o *Pattern) bool {
	if p.Height != o.Height || p.Width != o.Width {
		return false
	}
	for i, v := range p.Data {
		if v != o.Data[i] {
			return false
		}
	}
	return true
}

// Rows returns the pixel grid as a slice of rows. Each row aliases the
// underlying storage.
func (p *Pattern) Rows() [][]float64 {
	rows := make([][]float64, p.Height)
	for r := 0; r < p.Height; r++ {
		rows[r] = p.Data[r*p.Width : (r+1)*p.Width]
	}
	return rows
}

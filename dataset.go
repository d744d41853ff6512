package simex

import (
	"context"
	"iter"
	"time"

	"github.com/JunCEEE/SimEx-Lite/pattern"
	"github.com/JunCEEE/SimEx-Lite/store"
)

// DiffractionData is a read-only handle over one stored collection of
// diffraction patterns.
//
// The handle is not safe for concurrent use; independent handles to the same
// file are. It never mutates the underlying dataset.
type DiffractionData struct {
	store store.PatternStore
	opts  *options
	noise *Poissonizer
}

// Open opens a singfel-format container (plain or gzip-wrapped HDF5) at
// path.
func Open(path string, opts ...Option) (*DiffractionData, error) {
	st, err := store.OpenSingFEL(path)
	if err != nil {
		return nil, accessErr("opening "+path, err)
	}
	d := FromStore(st, opts...)
	d.opts.logger = d.opts.logger.WithPath(path)
	return d, nil
}

// FromStore wraps an already constructed pattern store. The handle takes
// ownership: Close closes the store.
func FromStore(st store.PatternStore, opts ...Option) *DiffractionData {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &DiffractionData{
		store: st,
		opts:  o,
		noise: NewPoissonizer(o.noiseSrc),
	}
}

// Close releases the underlying container.
func (d *DiffractionData) Close() error {
	return d.store.Close()
}

// PatternTotal returns the number of stored patterns without reading pixel
// data.
func (d *DiffractionData) PatternTotal() (int, error) {
	total, err := d.store.Count()
	if err != nil {
		return 0, accessErr("counting patterns", err)
	}
	return total, nil
}

// PatternShape returns the common (height, width) of every stored pattern.
// One representative record's stored dimensions are inspected; uniformity
// across the dataset is assumed, not verified.
func (d *DiffractionData) PatternShape() (int, int, error) {
	h, w, err := d.store.Shape()
	if err != nil {
		return 0, 0, accessErr("reading pattern shape", err)
	}
	return h, w, nil
}

// Resolve parses an index specification and bounds-checks it against this
// dataset, producing the canonical selection. Exactly one metadata read is
// performed; pixel data is not touched.
func (d *DiffractionData) Resolve(spec any) (*Selection, error) {
	parsed, err := ParseIndexSpec(spec)
	if err != nil {
		d.opts.metrics.RecordResolve(0, err)
		return nil, err
	}

	total, err := d.PatternTotal()
	if err != nil {
		d.opts.metrics.RecordResolve(0, err)
		return nil, err
	}

	sel, err := parsed.Resolve(total)
	if err != nil {
		d.opts.metrics.RecordResolve(0, err)
		d.opts.logger.LogResolve(context.Background(), parsed.String(), 0, err)
		return nil, err
	}
	d.opts.metrics.RecordResolve(sel.Len(), nil)
	return sel, nil
}

// Read eagerly retrieves the patterns selected by spec, in ascending
// physical order. With poissonize set, every pattern passes through the
// Poisson noise transform. The call is all-or-nothing: any failed fetch
// discards partial results.
func (d *DiffractionData) Read(ctx context.Context, spec any, poissonize bool) ([]*pattern.Pattern, error) {
	start := time.Now()

	parsed, err := ParseIndexSpec(spec)
	if err != nil {
		d.opts.metrics.RecordRead(0, time.Since(start), err)
		return nil, err
	}

	sel, err := d.Resolve(parsed)
	if err != nil {
		d.opts.metrics.RecordRead(0, time.Since(start), err)
		d.opts.logger.LogRead(ctx, parsed.String(), 0, poissonize, err)
		return nil, err
	}

	out := make([]*pattern.Pattern, 0, sel.Len())
	for i := range sel.Iterator() {
		if err := ctx.Err(); err != nil {
			d.opts.metrics.RecordRead(0, time.Since(start), err)
			return nil, err
		}
		p, err := d.fetch(i, poissonize)
		if err != nil {
			d.opts.metrics.RecordRead(0, time.Since(start), err)
			d.opts.logger.LogRead(ctx, parsed.String(), 0, poissonize, err)
			return nil, err
		}
		out = append(out, p)
	}

	d.opts.metrics.RecordRead(len(out), time.Since(start), nil)
	d.opts.logger.LogRead(ctx, parsed.String(), len(out), poissonize, nil)
	return out, nil
}

// Stream lazily retrieves the patterns selected by spec, yielding one
// pattern per pull in ascending physical order. The sequence is finite and
// single-pass; abandoning it mid-stream is safe and needs no explicit
// close. A failed fetch is yielded as the error of that pull and ends the
// sequence; patterns yielded before it remain valid.
func (d *DiffractionData) Stream(ctx context.Context, spec any, poissonize bool) iter.Seq2[*pattern.Pattern, error] {
	return func(yield func(*pattern.Pattern, error) bool) {
		start := time.Now()

		parsed, err := ParseIndexSpec(spec)
		if err != nil {
			d.opts.metrics.RecordStream(0, time.Since(start), err)
			yield(nil, err)
			return
		}

		sel, err := d.Resolve(parsed)
		if err != nil {
			d.opts.metrics.RecordStream(0, time.Since(start), err)
			d.opts.logger.LogStream(ctx, parsed.String(), 0, poissonize, err)
			yield(nil, err)
			return
		}

		yielded := 0
		for i := range sel.Iterator() {
			if err := ctx.Err(); err != nil {
				d.opts.metrics.RecordStream(yielded, time.Since(start), err)
				yield(nil, err)
				return
			}
			p, err := d.fetch(i, poissonize)
			if err != nil {
				d.opts.metrics.RecordStream(yielded, time.Since(start), err)
				d.opts.logger.LogStream(ctx, parsed.String(), yielded, poissonize, err)
				yield(nil, err)
				return
			}
			yielded++
			if !yield(p, nil) {
				d.opts.metrics.RecordStream(yielded, time.Since(start), nil)
				return
			}
		}

		d.opts.metrics.RecordStream(yielded, time.Since(start), nil)
		d.opts.logger.LogStream(ctx, parsed.String(), yielded, poissonize, nil)
	}
}

// fetch retrieves one pattern and optionally applies the noise transform.
func (d *DiffractionData) fetch(i int, poissonize bool) (*pattern.Pattern, error) {
	start := time.Now()
	p, err := d.store.Pattern(i)
	d.opts.metrics.RecordFetch(time.Since(start), err)
	if err != nil {
		return nil, accessErr("fetching pattern", err)
	}
	if poissonize {
		p = d.noise.Apply(p)
	}
	return p, nil
}

// PatternTotal returns the number of patterns stored at path, opening the
// container for metadata inspection only.
func PatternTotal(path string) (int, error) {
	d, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer d.Close()
	return d.PatternTotal()
}

// PatternShape returns the common pattern shape of the dataset at path,
// opening the container for metadata inspection only.
func PatternShape(path string) (int, int, error) {
	d, err := Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer d.Close()
	return d.PatternShape()
}

// Parameters reads the beam and geometry parameter groups of the singfel
// container at path.
func Parameters(path string) (store.Parameters, error) {
	st, err := store.OpenSingFEL(path)
	if err != nil {
		return store.Parameters{}, accessErr("opening "+path, err)
	}
	defer st.Close()

	p, err := st.Parameters()
	if err != nil {
		return store.Parameters{}, accessErr("reading parameters", err)
	}
	return p, nil
}

package embed

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Observations is a dense four-way tensor of observed edge values indexed
// by (subject, task, encoding, edge). An "encoding" is one independent
// observation of the same underlying network, e.g. a scanning pass; the
// edge axis enumerates the upper triangle of the node pair matrix.
type Observations struct {
	data []float64

	subjects, tasks, encodings, edges int
}

// NewObservations allocates a zeroed tensor. All dimensions must be >= 1.
func NewObservations(subjects, tasks, encodings, edges int) (*Observations, error) {
	if subjects < 1 || tasks < 1 || encodings < 1 || edges < 1 {
		return nil, fmt.Errorf("%w: (%d, %d, %d, %d)", ErrBadShape, subjects, tasks, encodings, edges)
	}
	return &Observations{
		data:      make([]float64, subjects*tasks*encodings*edges),
		subjects:  subjects,
		tasks:     tasks,
		encodings: encodings,
		edges:     edges,
	}, nil
}

// Dims returns the (subjects, tasks, encodings, edges) extents.
func (o *Observations) Dims() (subjects, tasks, encodings, edges int) {
	return o.subjects, o.tasks, o.encodings, o.edges
}

func (o *Observations) offset(s, t, e, j int) (int, error) {
	if s < 0 || s >= o.subjects || t < 0 || t >= o.tasks ||
		e < 0 || e >= o.encodings || j < 0 || j >= o.edges {
		return 0, fmt.Errorf("%w: (%d, %d, %d, %d)", ErrBadIndex, s, t, e, j)
	}
	return ((s*o.tasks+t)*o.encodings+e)*o.edges + j, nil
}

// At returns the value at (subject, task, encoding, edge).
// Panics on an out-of-range index, matching mat.Dense.At.
func (o *Observations) At(s, t, e, j int) float64 {
	off, err := o.offset(s, t, e, j)
	if err != nil {
		panic(err)
	}
	return o.data[off]
}

// Set stores v at (subject, task, encoding, edge).
func (o *Observations) Set(s, t, e, j int, v float64) {
	off, err := o.offset(s, t, e, j)
	if err != nil {
		panic(err)
	}
	o.data[off] = v
}

// Slice copies the (encodings x edges) observation matrix of one
// (subject, task) pair, in the row layout the sampler consumes.
func (o *Observations) Slice(subject, task int) (*mat.Dense, error) {
	start, err := o.offset(subject, task, 0, 0)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(o.encodings, o.edges, nil)
	copy(out.RawMatrix().Data, o.data[start:start+o.encodings*o.edges])
	return out, nil
}

// SetSlice overwrites one (subject, task) pair from an
// (encodings x edges) matrix.
func (o *Observations) SetSlice(subject, task int, m *mat.Dense) error {
	start, err := o.offset(subject, task, 0, 0)
	if err != nil {
		return err
	}
	r, c := m.Dims()
	if r != o.encodings || c != o.edges {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrBadSlice, r, c, o.encodings, o.edges)
	}
	for e := 0; e < r; e++ {
		copy(o.data[start+e*o.edges:start+(e+1)*o.edges], m.RawRowView(e))
	}
	return nil
}

// Abs replaces every value with its absolute value, in place.
// Correlation-derived continuous edges are conventionally folded into
// [0, 1] this way before fitting.
func (o *Observations) Abs() {
	for i, v := range o.data {
		o.data[i] = math.Abs(v)
	}
}

// ReadSliceCSV parses one (encodings x edges) observation matrix from r.
// Every record must hold the same number of float columns.
func ReadSliceCSV(r io.Reader, comma rune) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadCSV)
	}
	var (
		rows = len(records)
		cols = len(records[0])
		out  = mat.NewDense(rows, cols, nil)
	)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadCSV, i, len(rec), cols)
		}
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrBadCSV, i, j, err)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// LoadObservations reads a full tensor from per-(subject, task) CSV files,
// paths[subject][task]. Every file must share the same
// (encodings x edges) shape.
func LoadObservations(paths [][]string, comma rune) (*Observations, error) {
	if len(paths) == 0 || len(paths[0]) == 0 {
		return nil, fmt.Errorf("%w: no input files", ErrBadShape)
	}
	var o *Observations
	for s, taskPaths := range paths {
		for t, path := range taskPaths {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
			}
			slice, err := ReadSliceCSV(f, comma)
			closeErr := f.Close()
			if err != nil {
				return nil, err
			}
			if closeErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadCSV, closeErr)
			}
			if o == nil {
				enc, edges := slice.Dims()
				o, err = NewObservations(len(paths), len(paths[0]), enc, edges)
				if err != nil {
					return nil, err
				}
			}
			if err := o.SetSlice(s, t, slice); err != nil {
				return nil, err
			}
		}
	}
	return o, nil
}

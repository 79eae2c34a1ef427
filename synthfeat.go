// Package synthfeat produces synthetic feature vectors: log-compressed
// energies drawn from a uniform integer distribution. It stands in for the
// real audio feature-extraction stage while the classifier and radio path
// are exercised end to end.
//
// Basic usage:
//
//	ex := synthfeat.New(synthfeat.WithSeed(42))
//	v := ex.Extract() // ten ln(energy + 1e-6) values
package synthfeat

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"synthfeat/featvec"
)

// ErrShortBuffer is returned by ExtractInto when the destination slice
// cannot hold a full feature vector.
var ErrShortBuffer = errors.New("synthfeat: buffer shorter than feature vector")

// Stats is a point-in-time snapshot of Extractor counters.
type Stats struct {
	Extractions uint64 // completed Extract/ExtractInto calls
	Draws       uint64 // individual energy draws consumed
}

// Extractor fills feature vectors with synthetic log-energy values.
// Each element is ln(e + epsilon) for an integer energy e drawn uniformly
// from the half-open range [EnergyMin, EnergyMax).
//
// An Extractor is not safe for concurrent use. To share one draw stream
// across goroutines, inject a rand.LockedSource via WithSource.
type Extractor struct {
	dist distuv.Uniform
	eps  float64

	extractions uint64
	draws       uint64
}

// Option configures an Extractor.
type Option func(*options)

type options struct {
	min, max int
	eps      float64
	src      rand.Source
}

func defaultOptions() options {
	return options{min: 1, max: 1000, eps: 1e-6}
}

// WithSeed gives the Extractor its own deterministic source.
// The same seed always reproduces the same vector sequence.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = rand.NewSource(seed) }
}

// WithSource sets the random source energies are drawn from.
// When no source is set, draws fall through to the process-wide generator.
func WithSource(src rand.Source) Option { return func(o *options) { o.src = src } }

// WithEnergyRange sets the half-open integer range [min, max) energies are
// drawn from (default [1, 1000)).
func WithEnergyRange(min, max int) Option {
	return func(o *options) { o.min, o.max = min, max }
}

// WithEpsilon sets the offset added before the log (default 1e-6).
// It keeps the log argument strictly positive.
func WithEpsilon(eps float64) Option { return func(o *options) { o.eps = eps } }

// New creates an Extractor with the given options.
// Panics if any option value is invalid (e.g. min < 1, eps <= 0).
func New(opts ...Option) *Extractor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.min < 1:
		panic("synthfeat: energy range min must be >= 1")
	case o.max <= o.min:
		panic("synthfeat: energy range max must exceed min")
	case o.eps <= 0:
		panic("synthfeat: epsilon must be positive")
	}
	return &Extractor{
		dist: distuv.Uniform{Min: float64(o.min), Max: float64(o.max), Src: o.src},
		eps:  o.eps,
	}
}

// Extract fills and returns a fresh feature vector.
func (x *Extractor) Extract() featvec.Vector {
	var v featvec.Vector
	x.fill(v[:])
	return v
}

// ExtractInto writes one feature vector into the first featvec.Size slots
// of dst, leaving any remaining slots untouched. The caller owns dst; no
// reference to it is retained.
// Returns ErrShortBuffer without writing if dst is too small.
func (x *Extractor) ExtractInto(dst []float32) error {
	if len(dst) < featvec.Size {
		return fmt.Errorf("%w: need %d slots, got %d", ErrShortBuffer, featvec.Size, len(dst))
	}
	x.fill(dst[:featvec.Size])
	return nil
}

// fill draws one energy per slot. Flooring the uniform sample yields an
// integer draw over [min, max).
func (x *Extractor) fill(dst []float32) {
	for i := range dst {
		energy := math.Floor(x.dist.Rand())
		dst[i] = float32(math.Log(energy + x.eps))
		x.draws++
	}
	x.extractions++
}

// Stats returns a point-in-time snapshot of extraction counters.
func (x *Extractor) Stats() Stats {
	return Stats{Extractions: x.extractions, Draws: x.draws}
}

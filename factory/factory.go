// SPDX-License-Identifier: MIT

// Package factory turns validated data lines into geom entities.
//
// Construction is all-or-nothing: a Factory runs the line validator, then
// the geometric legality checks, and only then builds the entity. Any
// failure from either stage is reported as *InvalidShapeDataError, which
// matches ErrInvalidShapeData and still exposes the underlying cause to
// errors.Is / errors.As.
package factory

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/validate"
)

// ErrInvalidShapeData matches every error returned by CreateTriangle/CreatePyramid.
var ErrInvalidShapeData = errors.New("factory: invalid shape data")

// InvalidShapeDataError wraps a validation or legality failure for one shape.
type InvalidShapeDataError struct {
	Kind   geom.Kind
	ID     string
	Reason string // cause message, kept for diagnostics
	Err    error  // underlying cause
}

func (e *InvalidShapeDataError) Error() string {
	return fmt.Sprintf("cannot create %s: %s", strings.ToLower(e.Kind.String()), e.Reason)
}

// Unwrap exposes both the package sentinel and the underlying cause.
func (e *InvalidShapeDataError) Unwrap() []error {
	return []error{ErrInvalidShapeData, e.Err}
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger routes construction failures to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

// Factory builds Triangles and Pyramids from data lines.
// It holds no mutable state and is safe for concurrent use.
type Factory struct {
	log *zap.Logger
}

// New returns a Factory; without options it logs nothing.
func New(opts ...Option) *Factory {
	f := &Factory{log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = New()

// CreateTriangle uses a Factory with no logging.
func CreateTriangle(id, line string) (*geom.Triangle, error) {
	return defaultFactory.CreateTriangle(id, line)
}

// CreatePyramid uses a Factory with no logging.
func CreatePyramid(id, line string) (*geom.Pyramid, error) {
	return defaultFactory.CreatePyramid(id, line)
}

// CreateTriangle validates line (six coordinates) and returns a non-collinear Triangle.
func (f *Factory) CreateTriangle(id, line string) (*geom.Triangle, error) {
	c, err := validate.TriangleLine(line)
	if err != nil {
		return nil, f.fail(geom.KindTriangle, id, err)
	}
	if !validate.IsValidTriangle(c[0], c[1], c[2], c[3], c[4], c[5]) {
		return nil, f.fail(geom.KindTriangle, id, validate.ErrCollinearPoints)
	}

	return geom.NewTriangle(id,
		geom.Point{X: c[0], Y: c[1]},
		geom.Point{X: c[2], Y: c[3]},
		geom.Point{X: c[4], Y: c[5]},
	), nil
}

// CreatePyramid validates line (fifteen coordinates) and returns a Pyramid
// with an axis-aligned rectangular base and a non-zero height.
//
// Height is checked between point1's z and the apex z; the other base
// corners do not take part.
func (f *Factory) CreatePyramid(id, line string) (*geom.Pyramid, error) {
	c, err := validate.PyramidLine(line)
	if err != nil {
		return nil, f.fail(geom.KindPyramid, id, err)
	}
	if !validate.IsValidRectangularBase(c[0], c[1], c[3], c[4], c[6], c[7], c[9], c[10]) {
		return nil, f.fail(geom.KindPyramid, id, validate.ErrNonRectangularBase)
	}
	if !validate.IsValidPyramidHeight(c[2], c[14]) {
		return nil, f.fail(geom.KindPyramid, id, validate.ErrDegenerateHeight)
	}

	return geom.NewPyramid(id,
		geom.Point3D{X: c[0], Y: c[1], Z: c[2]},
		geom.Point3D{X: c[3], Y: c[4], Z: c[5]},
		geom.Point3D{X: c[6], Y: c[7], Z: c[8]},
		geom.Point3D{X: c[9], Y: c[10], Z: c[11]},
		geom.Point3D{X: c[12], Y: c[13], Z: c[14]},
	), nil
}

func (f *Factory) fail(kind geom.Kind, id string, cause error) error {
	err := &InvalidShapeDataError{Kind: kind, ID: id, Reason: cause.Error(), Err: cause}
	f.log.Error("failed to create shape",
		zap.String("id", id),
		zap.Stringer("kind", kind),
		zap.Error(cause))
	return err
}

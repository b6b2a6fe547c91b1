// SPDX-License-Identifier: MIT

// Package render formats repository contents and ingestion errors for the
// terminal. Metrics are read from a query.MetricsSource when it has them
// and computed with calc otherwise.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvshape/calc"
	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/ingest"
	"github.com/katalvlaran/lvshape/query"
	"github.com/katalvlaran/lvshape/warehouse"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor toggles ANSI colors.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.color = on }
}

// WithCut sets the plane for the pyramid volume ratio. The plane value is
// point1's coordinate on the plane's normal axis plus offset.
func WithCut(plane geom.Plane, offset float64) Option {
	return func(r *Renderer) {
		r.plane = plane
		r.offset = offset
	}
}

// WithMetrics sets the cache consulted before computing metrics.
func WithMetrics(src query.MetricsSource) Option {
	return func(r *Renderer) { r.src = src }
}

// Renderer writes human-readable reports to w.
type Renderer struct {
	w      io.Writer
	color  bool
	plane  geom.Plane
	offset float64
	src    query.MetricsSource

	title, warn, bad *color.Color
}

// New returns a Renderer without colors, cutting along XY one unit above point1.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, plane: geom.PlaneXY, offset: 1}
	for _, opt := range opts {
		opt(r)
	}

	r.title = color.New(color.FgCyan, color.Bold)
	r.warn = color.New(color.FgYellow)
	r.bad = color.New(color.FgRed)
	for _, c := range []*color.Color{r.title, r.warn, r.bad} {
		if r.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Shapes writes one block per shape, in the given order.
func (r *Renderer) Shapes(shapes []geom.Shape) error {
	for _, s := range shapes {
		var err error
		switch v := s.(type) {
		case *geom.Triangle:
			err = r.triangle(v)
		case *geom.Pyramid:
			err = r.pyramid(v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) triangle(t *geom.Triangle) error {
	area, perimeter := calc.Area(t), calc.Perimeter(t)
	if m, ok := r.cached(t.ID()); ok {
		if v, ok := m.AreaValue(); ok {
			area = v
		}
		if v, ok := m.PerimeterValue(); ok {
			perimeter = v
		}
	}
	c := calc.Classify(t)

	_, err := fmt.Fprintf(r.w,
		"%s\n  Area: %.2f\n  Perimeter: %.2f\n  Type: Right=%t, Iso=%t, Eq=%t, Ac=%t, Obt=%t\n",
		r.title.Sprintf("Triangle %s:", t.ID()), area, perimeter,
		c.RightAngled, c.Isosceles, c.Equilateral, c.Acute, c.Obtuse)
	return err
}

func (r *Renderer) pyramid(p *geom.Pyramid) error {
	volume, surface := calc.Volume(p), calc.SurfaceArea(p)
	if m, ok := r.cached(p.ID()); ok {
		if v, ok := m.VolumeValue(); ok {
			volume = v
		}
		if v, ok := m.AreaValue(); ok {
			surface = v
		}
	}

	axis, err := r.plane.NormalAxis()
	if err != nil {
		return err
	}
	ratio, err := calc.VolumeRatioAfterCut(p, r.plane, p.Point1().Axis(axis)+r.offset)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(r.w,
		"%s\n  Volume: %.2f\n  Surface Area: %.2f\n  Base on plane: %t\n  Volume ratio (%s): %.4f\n",
		r.title.Sprintf("Pyramid %s:", p.ID()), volume, surface,
		calc.IsBaseOnCoordinatePlane(p), r.plane, ratio)
	return err
}

func (r *Renderer) cached(id string) (m warehouse.Metrics, ok bool) {
	if r.src == nil {
		return m, false
	}
	return r.src.Metrics(id)
}

// Errors writes the rejected lines, if any, under a count header.
func (r *Renderer) Errors(errs []ingest.LineError) error {
	if len(errs) == 0 {
		return nil
	}
	if _, err := r.warn.Fprintf(r.w, "Found %d invalid lines:\n", len(errs)); err != nil {
		return err
	}
	for _, le := range errs {
		if _, err := fmt.Fprintf(r.w, "  %s\n", r.bad.Sprintf("Line %d: %v", le.LineNumber, le.Err)); err != nil {
			return err
		}
	}
	return nil
}

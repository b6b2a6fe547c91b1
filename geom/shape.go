// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Shape is the closed union over {*Triangle, *Pyramid}.
//
// The unexported marker keeps the set of variants inside this package, so
// a type switch over *Triangle and *Pyramid covers every Shape. Callers
// that only need a reference point or the vertex list should use the
// capabilities below rather than switching on the concrete type.
type Shape interface {
	// ID is the identifier assigned at ingestion time.
	ID() string
	// Name is the human-readable variant name ("Triangle", "Pyramid").
	Name() string
	// Kind is the variant tag.
	Kind() Kind
	// FirstPoint is the first vertex as read from input; triangles are
	// lifted to z=0.
	FirstPoint() Point3D
	// Vertices lists every vertex in input order; triangles are lifted to z=0.
	Vertices() []Point3D

	sealed()
}

// Triangle is a planar triangle identified by id.
// Fields are unexported; a Triangle never changes after construction.
type Triangle struct {
	id     string
	p1, p2 Point
	p3     Point
}

// NewTriangle builds a Triangle without validating it.
// Use factory.CreateTriangle to obtain a geometrically valid instance.
func NewTriangle(id string, p1, p2, p3 Point) *Triangle {
	return &Triangle{id: id, p1: p1, p2: p2, p3: p3}
}

func (t *Triangle) ID() string          { return t.id }
func (t *Triangle) Name() string        { return "Triangle" }
func (t *Triangle) Kind() Kind          { return KindTriangle }
func (t *Triangle) Point1() Point       { return t.p1 }
func (t *Triangle) Point2() Point       { return t.p2 }
func (t *Triangle) Point3() Point       { return t.p3 }
func (t *Triangle) FirstPoint() Point3D { return t.p1.Lift() }
func (t *Triangle) sealed()             {}

// Points returns the three vertices in input order.
func (t *Triangle) Points() [3]Point {
	return [3]Point{t.p1, t.p2, t.p3}
}

// Vertices returns the three vertices lifted to z=0.
func (t *Triangle) Vertices() []Point3D {
	return []Point3D{t.p1.Lift(), t.p2.Lift(), t.p3.Lift()}
}

// String renders the triangle for logs and CLI output.
func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle{id: %s, points: [(%g, %g), (%g, %g), (%g, %g)]}",
		t.id, t.p1.X, t.p1.Y, t.p2.X, t.p2.Y, t.p3.X, t.p3.Y)
}

// Pyramid is a rectangular-base pyramid identified by id.
//
// Point1..Point4 are the base corners in input order and Apex is the top.
// Point1 is the reference corner for height computations.
type Pyramid struct {
	id   string
	base [4]Point3D
	apex Point3D
}

// NewPyramid builds a Pyramid without validating it.
// Use factory.CreatePyramid to obtain a geometrically valid instance.
func NewPyramid(id string, p1, p2, p3, p4, apex Point3D) *Pyramid {
	return &Pyramid{id: id, base: [4]Point3D{p1, p2, p3, p4}, apex: apex}
}

func (p *Pyramid) ID() string          { return p.id }
func (p *Pyramid) Name() string        { return "Pyramid" }
func (p *Pyramid) Kind() Kind          { return KindPyramid }
func (p *Pyramid) Point1() Point3D     { return p.base[0] }
func (p *Pyramid) Point2() Point3D     { return p.base[1] }
func (p *Pyramid) Point3() Point3D     { return p.base[2] }
func (p *Pyramid) Point4() Point3D     { return p.base[3] }
func (p *Pyramid) Apex() Point3D       { return p.apex }
func (p *Pyramid) FirstPoint() Point3D { return p.base[0] }
func (p *Pyramid) sealed()             {}

// Base returns a copy of the four base corners.
func (p *Pyramid) Base() [4]Point3D {
	return p.base
}

// Vertices returns the four base corners followed by the apex.
func (p *Pyramid) Vertices() []Point3D {
	return []Point3D{p.base[0], p.base[1], p.base[2], p.base[3], p.apex}
}

// String renders the pyramid for logs and CLI output.
func (p *Pyramid) String() string {
	return fmt.Sprintf("Pyramid{id: %s, base: [%v %v %v %v], apex: %v}",
		p.id, p.base[0], p.base[1], p.base[2], p.base[3], p.apex)
}

// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"math"
	"strings"
)

// Epsilon is the tolerance band used for every equality, collinearity and
// coplanarity check in lvshape: machine epsilon (2^-52) × 100.
const Epsilon = 0x1p-52 * 100

// Sentinel errors for geom helpers.
var (
	// ErrUnknownKind indicates a shape-type tag that is neither TRIANGLE nor PYRAMID.
	ErrUnknownKind = errors.New("geom: unknown shape kind")

	// ErrUnknownPlane indicates a coordinate plane other than XY, XZ or YZ.
	ErrUnknownPlane = errors.New("geom: unknown coordinate plane")
)

// NearlyEqual reports whether |a-b| < Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a 2-D coordinate. It only ever appears as a Triangle vertex.
type Point struct {
	X, Y float64
}

// Lift returns p as a Point3D on the z=0 plane.
func (p Point) Lift() Point3D {
	return Point3D{X: p.X, Y: p.Y}
}

// Point3D is a 3-D coordinate. It only ever appears as a Pyramid vertex.
type Point3D struct {
	X, Y, Z float64
}

// Axis returns the coordinate selected by axis (0=x, 1=y, 2=z).
func (p Point3D) Axis(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Kind enumerates the shape variants.
type Kind int

const (
	// KindTriangle identifies *Triangle.
	KindTriangle Kind = iota
	// KindPyramid identifies *Pyramid.
	KindPyramid
)

// String returns the upper-case tag used in the text format.
func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "TRIANGLE"
	case KindPyramid:
		return "PYRAMID"
	default:
		return "UNKNOWN"
	}
}

// ParseKind maps a shape-type tag to a Kind, ignoring case.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "TRIANGLE":
		return KindTriangle, nil
	case "PYRAMID":
		return KindPyramid, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Plane names an axis-aligned coordinate plane.
//
// A plane fixes one axis: XY fixes z, XZ fixes y, YZ fixes x. NormalAxis
// returns that axis index, which is what cut-ratio and base-plane
// computations measure along.
type Plane int

const (
	// PlaneXY is the plane z = const.
	PlaneXY Plane = iota
	// PlaneXZ is the plane y = const.
	PlaneXZ
	// PlaneYZ is the plane x = const.
	PlaneYZ
)

// String returns "XY", "XZ" or "YZ".
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "UNKNOWN"
	}
}

// NormalAxis returns the axis index (0=x, 1=y, 2=z) perpendicular to p.
func (p Plane) NormalAxis() (int, error) {
	switch p {
	case PlaneXY:
		return 2, nil
	case PlaneXZ:
		return 1, nil
	case PlaneYZ:
		return 0, nil
	default:
		return 0, ErrUnknownPlane
	}
}

// ParsePlane maps "XY", "XZ" or "YZ" (any case) to a Plane.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return PlaneXY, nil
	case "XZ":
		return PlaneXZ, nil
	case "YZ":
		return PlaneYZ, nil
	default:
		return 0, ErrUnknownPlane
	}
}

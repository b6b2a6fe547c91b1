// SPDX-License-Identifier: MIT

package calc

import (
	"math"

	"github.com/katalvlaran/lvshape/geom"
)

// BaseArea is the bounding-box area of the base corners over x and y.
// The base is an axis-aligned rectangle, so the bounding box is the base.
func BaseArea(p *geom.Pyramid) float64 {
	b := p.Base()
	minX, maxX := b[0].X, b[0].X
	minY, maxY := b[0].Y, b[0].Y
	for _, c := range b[1:] {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	return math.Abs((maxX - minX) * (maxY - minY))
}

// Height is |apex.z − point1.z|.
func Height(p *geom.Pyramid) float64 {
	return math.Abs(p.Apex().Z - p.Point1().Z)
}

// Volume is BaseArea × Height / 3.
func Volume(p *geom.Pyramid) float64 {
	return BaseArea(p) * Height(p) / 3
}

// faceArea is |(b−a) × (c−a)| / 2.
func faceArea(a, b, c geom.Point3D) float64 {
	v1x, v1y, v1z := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	v2x, v2y, v2z := c.X-a.X, c.Y-a.Y, c.Z-a.Z

	cx := v1y*v2z - v1z*v2y
	cy := v1z*v2x - v1x*v2z
	cz := v1x*v2y - v1y*v2x

	return math.Sqrt(cx*cx+cy*cy+cz*cz) / 2
}

// SurfaceArea is BaseArea plus the four lateral faces
// (p1,p2,apex), (p2,p3,apex), (p3,p4,apex), (p4,p1,apex).
func SurfaceArea(p *geom.Pyramid) float64 {
	b, apex := p.Base(), p.Apex()
	total := BaseArea(p)
	for i := range b {
		total += faceArea(b[i], b[(i+1)%len(b)], apex)
	}
	return total
}

// sharedAxis reports whether all base corners agree on axis within ε.
func sharedAxis(b [4]geom.Point3D, axis int) bool {
	for i := 1; i < len(b); i++ {
		if !geom.NearlyEqual(b[i-1].Axis(axis), b[i].Axis(axis)) {
			return false
		}
	}
	return true
}

// BasePlane returns the coordinate plane the base lies on, checking a
// shared z first (XY), then y (XZ), then x (YZ). ok is false when the base
// corners share none of the three.
func BasePlane(p *geom.Pyramid) (plane geom.Plane, ok bool) {
	b := p.Base()
	switch {
	case sharedAxis(b, 2):
		return geom.PlaneXY, true
	case sharedAxis(b, 1):
		return geom.PlaneXZ, true
	case sharedAxis(b, 0):
		return geom.PlaneYZ, true
	default:
		return 0, false
	}
}

// IsBaseOnCoordinatePlane reports whether all four base corners share one
// coordinate within ε.
func IsBaseOnCoordinatePlane(p *geom.Pyramid) bool {
	_, ok := BasePlane(p)
	return ok
}

// VolumeRatioAfterCut estimates the fraction of volume between a cutting
// plane and the apex.
//
// The plane fixes one axis (XY→z, XZ→y, YZ→x). Along that axis the span from
// point1 to the apex is the height h, and the apex-side sub-pyramid is taken
// as similar to the whole:
//
//	ratio = (clamp(|apex − value|, 0, h) / h)³
//
// This is a same-axis approximation, not an exact plane/solid intersection.
// Returns 0 when h ≤ ε and geom.ErrUnknownPlane for an invalid plane.
func VolumeRatioAfterCut(p *geom.Pyramid, plane geom.Plane, value float64) (float64, error) {
	axis, err := plane.NormalAxis()
	if err != nil {
		return 0, err
	}

	apex := p.Apex().Axis(axis)
	h := math.Abs(apex - p.Point1().Axis(axis))
	if h <= geom.Epsilon {
		return 0, nil
	}

	d := math.Min(math.Abs(apex-value), h)
	r := d / h
	return r * r * r, nil
}

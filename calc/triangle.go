// SPDX-License-Identifier: MIT

package calc

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvshape/geom"
)

// TriangleClass bundles the classification flags of one triangle.
type TriangleClass struct {
	RightAngled bool
	Isosceles   bool
	Equilateral bool
	Acute       bool
	Obtuse      bool
}

func distance(a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sides returns |p1p2|, |p2p3|, |p3p1| in that order.
func Sides(t *geom.Triangle) [3]float64 {
	p1, p2, p3 := t.Point1(), t.Point2(), t.Point3()
	return [3]float64{distance(p1, p2), distance(p2, p3), distance(p3, p1)}
}

func sortedSides(t *geom.Triangle) (a, b, c float64) {
	s := Sides(t)
	sort.Float64s(s[:])
	return s[0], s[1], s[2]
}

// Perimeter is the sum of the three side lengths.
func Perimeter(t *geom.Triangle) float64 {
	s := Sides(t)
	return s[0] + s[1] + s[2]
}

// Area is |(p2−p1) × (p3−p1)| / 2; it does not depend on vertex order.
func Area(t *geom.Triangle) float64 {
	p1, p2, p3 := t.Point1(), t.Point2(), t.Point3()
	return math.Abs((p2.X-p1.X)*(p3.Y-p1.Y)-(p3.X-p1.X)*(p2.Y-p1.Y)) / 2
}

// IsRightAngled reports |a²+b²−c²| < ε for sorted sides a ≤ b ≤ c.
func IsRightAngled(t *geom.Triangle) bool {
	a, b, c := sortedSides(t)
	return math.Abs(a*a+b*b-c*c) < geom.Epsilon
}

// IsIsosceles reports whether any two sides are equal within ε.
func IsIsosceles(t *geom.Triangle) bool {
	s := Sides(t)
	return geom.NearlyEqual(s[0], s[1]) || geom.NearlyEqual(s[1], s[2]) || geom.NearlyEqual(s[0], s[2])
}

// IsEquilateral reports whether side1≈side2 and side2≈side3 within ε.
// The third pair is implied.
func IsEquilateral(t *geom.Triangle) bool {
	s := Sides(t)
	return geom.NearlyEqual(s[0], s[1]) && geom.NearlyEqual(s[1], s[2])
}

// IsAcute reports a²+b²−c² > ε for sorted sides a ≤ b ≤ c.
func IsAcute(t *geom.Triangle) bool {
	a, b, c := sortedSides(t)
	return a*a+b*b-c*c > geom.Epsilon
}

// IsObtuse reports neither acute nor right-angled.
func IsObtuse(t *geom.Triangle) bool {
	return !IsAcute(t) && !IsRightAngled(t)
}

// Classify evaluates every flag with a single side computation.
func Classify(t *geom.Triangle) TriangleClass {
	s := Sides(t)
	sorted := s
	sort.Float64s(sorted[:])
	a, b, c := sorted[0], sorted[1], sorted[2]
	d := a*a + b*b - c*c

	right := math.Abs(d) < geom.Epsilon
	acute := d > geom.Epsilon

	return TriangleClass{
		RightAngled: right,
		Isosceles:   geom.NearlyEqual(s[0], s[1]) || geom.NearlyEqual(s[1], s[2]) || geom.NearlyEqual(s[0], s[2]),
		Equilateral: geom.NearlyEqual(s[0], s[1]) && geom.NearlyEqual(s[1], s[2]),
		Acute:       acute,
		Obtuse:      !acute && !right,
	}
}

// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvshape/geom"
)

// Coordinate counts per shape line.
const (
	// TriangleCoordinateCount is x1 y1 x2 y2 x3 y3.
	TriangleCoordinateCount = 6
	// PyramidCoordinateCount is four base corners plus the apex, x y z each.
	PyramidCoordinateCount = 15
)

// TriangleLine validates a triangle data line and returns its six coordinates.
//
// Stages:
//  1. Trim; reject empty or '#'-prefixed lines (ErrEmptyOrCommentLine).
//  2. Split on whitespace runs.
//  3. Require ≥6 tokens (*ArityError); tokens past the sixth are ignored.
//  4. Parse each of the first six (*NumberFormatError with its position).
//  5. Group into three (x, y) points and require each to be finite.
//
// Geometric legality (non-collinearity) is a separate step; see IsValidTriangle.
func TriangleLine(line string) ([]float64, error) {
	return validateLine(line, TriangleCoordinateCount, 2)
}

// PyramidLine validates a pyramid data line and returns its fifteen
// coordinates: four base corners then the apex, (x, y, z) each.
// Stages match TriangleLine with N=15 and 3-D points.
func PyramidLine(line string) ([]float64, error) {
	return validateLine(line, PyramidCoordinateCount, 3)
}

// validateLine is the shared tokenizer; dim is the point dimension (2 or 3).
func validateLine(line string, n, dim int) ([]float64, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, ErrEmptyOrCommentLine
	}

	parts := strings.Fields(trimmed)
	if len(parts) < n {
		return nil, &ArityError{Expected: n, Actual: len(parts)}
	}

	coords := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := parseAt(parts[i], i)
		if err != nil {
			return nil, err
		}
		coords[i] = v
	}

	for i := 0; i < n; i += dim {
		var ok bool
		if dim == 2 {
			ok = IsFinitePoint(coords[i], coords[i+1])
		} else {
			ok = IsFinitePoint3D(coords[i], coords[i+1], coords[i+2])
		}
		if !ok {
			return nil, fmt.Errorf("point %d: %w", i/dim+1, ErrNonFinitePoint)
		}
	}

	return coords, nil
}

// IsValidTriangle reports whether the three points are not collinear:
// |(x2−x1)(y3−y1) − (x3−x1)(y2−y1)| / 2 > Epsilon.
func IsValidTriangle(x1, y1, x2, y2, x3, y3 float64) bool {
	area := abs((x2-x1)*(y3-y1)-(x3-x1)*(y2-y1)) / 2
	return area > geom.Epsilon
}

// IsValidRectangularBase reports whether four base points project onto
// exactly two distinct x values and two distinct y values, i.e. they form
// an axis-aligned rectangle. Values are compared exactly.
func IsValidRectangularBase(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return distinct(x1, x2, x3, x4) == 2 && distinct(y1, y2, y3, y4) == 2
}

// IsValidPyramidHeight reports whether |baseZ − apexZ| > Epsilon.
// Callers pass point1's z as baseZ; the other corners are not consulted.
func IsValidPyramidHeight(baseZ, apexZ float64) bool {
	return abs(baseZ-apexZ) > geom.Epsilon
}

func distinct(vs ...float64) int {
	seen := make(map[float64]struct{}, len(vs))
	for _, v := range vs {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

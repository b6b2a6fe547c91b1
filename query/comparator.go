// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lvshape/geom"
)

// ErrUnknownComparator is returned by ParseComparator for an unknown name.
var ErrUnknownComparator = errors.New("query: unknown comparator")

// Comparator orders shapes: negative if a < b, zero if equal, positive if a > b.
type Comparator interface {
	Compare(a, b geom.Shape) float64
}

// CompareFunc adapts a function to Comparator.
type CompareFunc func(a, b geom.Shape) float64

// Compare calls f(a, b).
func (f CompareFunc) Compare(a, b geom.Shape) float64 { return f(a, b) }

// ByIDOrder compares ids lexicographically (byte order).
var ByIDOrder Comparator = CompareFunc(func(a, b geom.Shape) float64 {
	return float64(strings.Compare(idOf(a), idOf(b)))
})

// ByNameOrder compares names lexicographically (byte order).
var ByNameOrder Comparator = CompareFunc(func(a, b geom.Shape) float64 {
	return float64(strings.Compare(nameOf(a), nameOf(b)))
})

// ByFirstX compares the x coordinate of each shape's first vertex.
var ByFirstX Comparator = CompareFunc(func(a, b geom.Shape) float64 {
	return first(a).X - first(b).X
})

// ByFirstY compares the y coordinate of each shape's first vertex.
var ByFirstY Comparator = CompareFunc(func(a, b geom.Shape) float64 {
	return first(a).Y - first(b).Y
})

// Reverse inverts cmp.
func Reverse(cmp Comparator) Comparator {
	return CompareFunc(func(a, b geom.Shape) float64 { return cmp.Compare(b, a) })
}

// ParseComparator resolves "id", "name", "x" or "y" (any case).
func ParseComparator(name string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id":
		return ByIDOrder, nil
	case "name":
		return ByNameOrder, nil
	case "x":
		return ByFirstX, nil
	case "y":
		return ByFirstY, nil
	default:
		return nil, ErrUnknownComparator
	}
}

// first treats a nil shape as sitting at the origin.
func first(s geom.Shape) geom.Point3D {
	if s == nil {
		return geom.Point3D{}
	}
	return s.FirstPoint()
}

func idOf(s geom.Shape) string {
	if s == nil {
		return ""
	}
	return s.ID()
}

func nameOf(s geom.Shape) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

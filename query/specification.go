// SPDX-License-Identifier: MIT

// Package query provides reusable predicates (Specification) and orderings
// (Comparator) over geom shapes, for Repository.FindBySpecification and
// Repository.Sort.
//
// Specifications compose with And, Or and Not. Metric-range specifications
// read a MetricsSource (normally the warehouse.MetricsStore attached to the
// repository) by shape id and are false when no entry or no such metric
// exists; they never fail.
package query

import (
	"math"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/warehouse"
)

// Specification is a boolean predicate over shapes.
type Specification interface {
	IsSatisfiedBy(s geom.Shape) bool
}

// SpecFunc adapts a function to Specification.
type SpecFunc func(s geom.Shape) bool

// IsSatisfiedBy calls f(s).
func (f SpecFunc) IsSatisfiedBy(s geom.Shape) bool { return f(s) }

// MetricsSource looks up cached metrics by shape id.
type MetricsSource interface {
	Metrics(id string) (warehouse.Metrics, bool)
}

// And is satisfied when every spec is; an empty And is always satisfied.
func And(specs ...Specification) Specification {
	return SpecFunc(func(s geom.Shape) bool {
		for _, sp := range specs {
			if !sp.IsSatisfiedBy(s) {
				return false
			}
		}
		return true
	})
}

// Or is satisfied when any spec is; an empty Or is never satisfied.
func Or(specs ...Specification) Specification {
	return SpecFunc(func(s geom.Shape) bool {
		for _, sp := range specs {
			if sp.IsSatisfiedBy(s) {
				return true
			}
		}
		return false
	})
}

// Not negates spec.
func Not(spec Specification) Specification {
	return SpecFunc(func(s geom.Shape) bool { return !spec.IsSatisfiedBy(s) })
}

// ByID matches the shape whose ID equals id.
type ByID struct{ ID string }

func (b ByID) IsSatisfiedBy(s geom.Shape) bool { return s != nil && s.ID() == b.ID }

// ByName matches shapes whose Name equals name ("Triangle", "Pyramid").
type ByName struct{ Name string }

func (b ByName) IsSatisfiedBy(s geom.Shape) bool { return s != nil && s.Name() == b.Name }

// InFirstQuadrant matches shapes whose every vertex has x > 0 and y > 0.
// z is not constrained.
type InFirstQuadrant struct{}

func (InFirstQuadrant) IsSatisfiedBy(s geom.Shape) bool {
	if s == nil {
		return false
	}
	for _, v := range s.Vertices() {
		if v.X <= 0 || v.Y <= 0 {
			return false
		}
	}
	return true
}

// Range is a closed interval [Min, Max].
type Range struct{ Min, Max float64 }

// Contains reports Min ≤ v ≤ Max.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// AreaInRange matches shapes whose cached area lies in Range.
type AreaInRange struct {
	Source MetricsSource
	Range
}

func (a AreaInRange) IsSatisfiedBy(s geom.Shape) bool {
	return metricIn(a.Source, s, a.Range, warehouse.Metrics.AreaValue)
}

// VolumeInRange matches shapes whose cached volume lies in Range.
type VolumeInRange struct {
	Source MetricsSource
	Range
}

func (v VolumeInRange) IsSatisfiedBy(s geom.Shape) bool {
	return metricIn(v.Source, s, v.Range, warehouse.Metrics.VolumeValue)
}

// PerimeterInRange matches shapes whose cached perimeter lies in Range.
type PerimeterInRange struct {
	Source MetricsSource
	Range
}

func (p PerimeterInRange) IsSatisfiedBy(s geom.Shape) bool {
	return metricIn(p.Source, s, p.Range, warehouse.Metrics.PerimeterValue)
}

func metricIn(src MetricsSource, s geom.Shape, r Range, get func(warehouse.Metrics) (float64, bool)) bool {
	if src == nil || s == nil {
		return false
	}
	m, ok := src.Metrics(s.ID())
	if !ok {
		return false
	}
	v, ok := get(m)
	return ok && r.Contains(v)
}

// DistanceFromOriginInRange matches shapes with at least one vertex whose
// Euclidean distance from the origin lies in Range. Triangle vertices are
// measured in the plane.
type DistanceFromOriginInRange struct {
	Range
}

func (d DistanceFromOriginInRange) IsSatisfiedBy(s geom.Shape) bool {
	if s == nil {
		return false
	}
	for _, v := range s.Vertices() {
		if d.Contains(math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)) {
			return true
		}
	}
	return false
}

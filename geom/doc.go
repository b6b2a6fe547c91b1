// SPDX-License-Identifier: MIT

// Package geom defines the immutable value types shared by every lvshape
// package: 2-D and 3-D points, the Triangle and Pyramid entities, and the
// sealed Shape union that ties them together.
//
// 🚀 What lives here?
//
//	• Point / Point3D      plain coordinate values
//	• Triangle / Pyramid   identified shapes, read-only after construction
//	• Shape                closed union over {*Triangle, *Pyramid}
//	• Kind / Plane         small enums with String/Parse helpers
//	• Epsilon              the single numeric tolerance (machine-eps × 100)
//
// Shape is sealed: only this package can implement it. Code that needs a
// per-variant behavior uses the capabilities every variant provides
// (FirstPoint, Vertices, Kind) instead of inspecting concrete types, and a
// type switch over the two variants is exhaustive by construction.
//
// Entities are NOT validated here. NewTriangle and NewPyramid are raw
// constructors; the factory package is the validated entry point that
// guarantees non-collinear triangles and rectangular-base pyramids.
package geom

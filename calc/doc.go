// SPDX-License-Identifier: MIT

// Package calc computes derived metrics and classifications for geom shapes.
//
// Every function is pure and tolerance-aware: comparisons use geom.Epsilon
// (machine epsilon × 100).
//
// Triangle:
//
//	Perimeter, Area                     Euclidean sides, |cross| / 2
//	IsRightAngled, IsAcute, IsObtuse    sorted sides a ≤ b ≤ c, sign of a²+b²−c²
//	IsIsosceles, IsEquilateral          pairwise side equality within ε
//	Classify                            all flags in one pass
//
// Pyramid:
//
//	BaseArea, Height, Volume, SurfaceArea
//	IsBaseOnCoordinatePlane, BasePlane
//	VolumeRatioAfterCut                 similar-sub-pyramid approximation
//
// Obtuse is derived (neither acute nor right), so an obtuse verdict also
// covers any triangle that falls in the ε band between the two.
//
// Pyramid height, base-plane and cut computations use point1 as the base
// reference corner. If the four base corners disagree on the height axis the
// results follow point1, not an average.
package calc

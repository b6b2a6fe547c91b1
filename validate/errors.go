// SPDX-License-Identifier: MIT
// Package validate: sentinel error set and typed detail errors.
//
// Every failure returned by this package matches one of the sentinels below
// via errors.Is. Typed errors (ArityError, NumberFormatError) carry the
// details and unwrap to their sentinel; use errors.As to read them.

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrCommentLine indicates a blank line or a line starting with '#'.
	ErrEmptyOrCommentLine = errors.New("validate: empty or comment line")

	// ErrArity indicates fewer coordinate tokens than the shape requires.
	ErrArity = errors.New("validate: not enough coordinates")

	// ErrNumberFormat indicates a token outside the -?digits(.digits)? grammar.
	ErrNumberFormat = errors.New("validate: invalid number format")

	// ErrNonFinitePoint indicates a point with a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("validate: point coordinates must be finite")

	// ErrGeometricInvariant is the parent of every shape-legality failure.
	ErrGeometricInvariant = errors.New("validate: geometric invariant violated")
)

// Geometric refinements; each also matches ErrGeometricInvariant.
var (
	ErrCollinearPoints    = fmt.Errorf("%w: points are collinear - cannot form a triangle", ErrGeometricInvariant)
	ErrNonRectangularBase = fmt.Errorf("%w: base points do not form a rectangle", ErrGeometricInvariant)
	ErrDegenerateHeight   = fmt.Errorf("%w: apex must be at different height than base", ErrGeometricInvariant)
)

// ArityError reports how many tokens were expected and how many were found.
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("validate: expected %d coordinates, got %d", e.Expected, e.Actual)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// NumberFormatError reports the offending token and its 0-based position.
// Position is -1 when the token was validated outside of a line.
type NumberFormatError struct {
	Position int
	Token    string
}

func (e *NumberFormatError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("validate: invalid number format: %q", e.Token)
	}
	return fmt.Sprintf("validate: invalid coordinate format at position %d: %q", e.Position, e.Token)
}

func (e *NumberFormatError) Unwrap() error { return ErrNumberFormat }

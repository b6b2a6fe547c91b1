// SPDX-License-Identifier: MIT
// Package validate_test covers the numeric grammar, line tokenization and
// geometric legality predicates.

package validate_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvshape/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidNumber(t *testing.T) {
	valid := []string{"0", "-1", "42", "3.14", "-0.5", "  7  ", "007.250"}
	for _, s := range valid {
		assert.Truef(t, validate.IsValidNumber(s), "%q should be valid", s)
	}
	invalid := []string{"", " ", "+1", "1e5", "1.", ".5", "1a", "1 2", "--1", "NaN", "Infinity", "١٢"}
	for _, s := range invalid {
		assert.Falsef(t, validate.IsValidNumber(s), "%q should be invalid", s)
	}
}

func TestParseNumber(t *testing.T) {
	v, err := validate.ParseNumber(" -2.5 ")
	require.NoError(t, err)
	assert.Equal(t, -2.5, v)

	_, err = validate.ParseNumber("1e3")
	require.ErrorIs(t, err, validate.ErrNumberFormat)
	var nf *validate.NumberFormatError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, -1, nf.Position)
	assert.Equal(t, "1e3", nf.Token)

	// A grammatical but overflowing literal parses to +Inf.
	huge := "1" + strings.Repeat("0", 400)
	v, err = validate.ParseNumber(huge)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestIsFinitePoint(t *testing.T) {
	assert.True(t, validate.IsFinitePoint(1, -1))
	assert.False(t, validate.IsFinitePoint(math.NaN(), 0))
	assert.False(t, validate.IsFinitePoint(0, math.Inf(-1)))
	assert.True(t, validate.IsFinitePoint3D(1, 2, 3))
	assert.False(t, validate.IsFinitePoint3D(1, 2, math.Inf(1)))
}

// TestTriangleLine_RoundTrip pins coordinate extraction including ignored extras.
func TestTriangleLine_RoundTrip(t *testing.T) {
	got, err := validate.TriangleLine("0 0 3 0 0 4")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3, 0, 0, 4}, got)

	got, err = validate.TriangleLine("  0 0\t3 0   0 4 100 200 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3, 0, 0, 4}, got)

	// Extras are ignored even when they are not numbers.
	got, err = validate.TriangleLine("0 0 3 0 0 4 junk")
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestTriangleLine_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"Empty", "   ", validate.ErrEmptyOrCommentLine},
		{"Comment", "# 0 0 3 0 0 4", validate.ErrEmptyOrCommentLine},
		{"Arity", "1 2 3", validate.ErrArity},
		{"BadToken", "1a 2 3 4 5 6", validate.ErrNumberFormat},
		{"Exponent", "0 0 3e0 0 0 4", validate.ErrNumberFormat},
		{"Overflow", "0 0 " + "9" + strings.Repeat("9", 400) + " 0 0 4", validate.ErrNonFinitePoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate.TriangleLine(tc.line)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTriangleLine_ErrorDetails(t *testing.T) {
	_, err := validate.TriangleLine("1 2 3")
	var ae *validate.ArityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 6, ae.Expected)
	assert.Equal(t, 3, ae.Actual)

	_, err = validate.TriangleLine("0 0 3 x 0 4")
	var nf *validate.NumberFormatError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 3, nf.Position)
	assert.Equal(t, "x", nf.Token)
}

func TestPyramidLine(t *testing.T) {
	line := "0 0 0 3 0 0 3 4 0 0 4 0 1.5 2 5"
	got, err := validate.PyramidLine(line)
	require.NoError(t, err)
	require.Len(t, got, validate.PyramidCoordinateCount)
	assert.Equal(t, 5.0, got[14])

	got, err = validate.PyramidLine(line + " 7 8 9")
	require.NoError(t, err)
	assert.Len(t, got, 15)

	_, err = validate.PyramidLine("0 0 0 3 0 0")
	var ae *validate.ArityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 15, ae.Expected)
	assert.Equal(t, 6, ae.Actual)
}

func TestIsValidTriangle(t *testing.T) {
	assert.False(t, validate.IsValidTriangle(0, 0, 1, 1, 2, 2), "collinear diagonal")
	assert.False(t, validate.IsValidTriangle(1, 1, 1, 1, 1, 1), "coincident points")
	assert.True(t, validate.IsValidTriangle(0, 0, 3, 0, 0, 4))
}

func TestIsValidRectangularBase(t *testing.T) {
	assert.True(t, validate.IsValidRectangularBase(0, 0, 3, 0, 3, 4, 0, 4))
	// Corner order does not matter.
	assert.True(t, validate.IsValidRectangularBase(3, 4, 0, 0, 0, 4, 3, 0))
	assert.False(t, validate.IsValidRectangularBase(0, 0, 3, 0, 4, 4, 0, 4), "three distinct x")
	assert.False(t, validate.IsValidRectangularBase(0, 0, 0, 0, 0, 4, 0, 4), "one distinct x")
}

func TestIsValidPyramidHeight(t *testing.T) {
	assert.False(t, validate.IsValidPyramidHeight(0, 0))
	assert.False(t, validate.IsValidPyramidHeight(1, 1+1e-15))
	assert.True(t, validate.IsValidPyramidHeight(0, -2))
}

func TestGeometricSentinels(t *testing.T) {
	for _, err := range []error{validate.ErrCollinearPoints, validate.ErrNonRectangularBase, validate.ErrDegenerateHeight} {
		assert.ErrorIs(t, err, validate.ErrGeometricInvariant)
	}
}

// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern is the whole lexical grammar for a coordinate token:
// optional leading minus, digits, optional fraction. No exponent, no '+'.
var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsValidNumber reports whether the trimmed token matches -?digits(.digits)?.
func IsValidNumber(token string) bool {
	return numberPattern.MatchString(strings.TrimSpace(token))
}

// ParseNumber parses a token accepted by IsValidNumber.
//
// Returns *NumberFormatError (Position -1) when the grammar is violated.
// A grammatical token whose magnitude overflows float64 yields ±Inf with a
// nil error; the point-level finiteness check is what rejects it.
func ParseNumber(token string) (float64, error) {
	return parseAt(token, -1)
}

func parseAt(token string, pos int) (float64, error) {
	if !IsValidNumber(token) {
		return 0, &NumberFormatError{Position: pos, Token: token}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		// ErrRange already carries ±Inf in v.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, &NumberFormatError{Position: pos, Token: token}
		}
	}
	return v, nil
}

// IsFinitePoint reports whether x and y are neither NaN nor ±Inf.
func IsFinitePoint(x, y float64) bool {
	return isFinite(x) && isFinite(y)
}

// IsFinitePoint3D reports whether x, y and z are neither NaN nor ±Inf.
func IsFinitePoint3D(x, y, z float64) bool {
	return isFinite(x) && isFinite(y) && isFinite(z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

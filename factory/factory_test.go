package factory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvshape/factory"
	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/validate"
)

func TestCreateTriangle(t *testing.T) {
	tr, err := factory.CreateTriangle("t1", "0 0 3 0 0 4")
	require.NoError(t, err)
	assert.Equal(t, "t1", tr.ID())
	assert.Equal(t, geom.Point{X: 3, Y: 0}, tr.Point2())
	assert.Equal(t, geom.Point{X: 0, Y: 4}, tr.Point3())
}

func TestCreateTriangle_Failures(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		cause error
	}{
		{"Collinear", "0 0 1 1 2 2", validate.ErrCollinearPoints},
		{"Arity", "1 2 3", validate.ErrArity},
		{"Format", "1a 2 3 4 5 6", validate.ErrNumberFormat},
		{"Empty", "", validate.ErrEmptyOrCommentLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := factory.CreateTriangle("t", tc.line)
			assert.Nil(t, tr, "no partial entity on failure")
			assert.ErrorIs(t, err, factory.ErrInvalidShapeData)
			assert.ErrorIs(t, err, tc.cause)

			var ise *factory.InvalidShapeDataError
			require.True(t, errors.As(err, &ise))
			assert.Equal(t, geom.KindTriangle, ise.Kind)
			assert.Equal(t, "t", ise.ID)
			assert.ErrorIs(t, ise.Err, tc.cause)
			assert.Equal(t, ise.Err.Error(), ise.Reason)
			assert.Contains(t, err.Error(), "cannot create triangle: ")
		})
	}
}

func TestCreatePyramid(t *testing.T) {
	p, err := factory.CreatePyramid("p1", "0 0 0 3 0 0 3 4 0 0 4 0 1.5 2 5")
	require.NoError(t, err)
	assert.Equal(t, geom.Point3D{X: 1.5, Y: 2, Z: 5}, p.Apex())
	assert.Equal(t, geom.Point3D{X: 3, Y: 4, Z: 0}, p.Point3())
}

func TestCreatePyramid_Failures(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		cause error
	}{
		{"NotRectangle", "0 0 0 3 0 0 4 4 0 0 4 0 1.5 2 5", validate.ErrNonRectangularBase},
		{"ZeroHeight", "0 0 0 3 0 0 3 4 0 0 4 0 1.5 2 0", validate.ErrDegenerateHeight},
		{"Arity", "0 0 0 3 0 0", validate.ErrArity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := factory.CreatePyramid("p", tc.line)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, factory.ErrInvalidShapeData)
			assert.ErrorIs(t, err, tc.cause)
			assert.Contains(t, err.Error(), "cannot create pyramid: ")
		})
	}
}

// TestCreatePyramid_Point1HeightReference pins that only point1's z is
// compared with the apex: other corners may sit at the apex height.
func TestCreatePyramid_Point1HeightReference(t *testing.T) {
	// point2 shares the apex z=5, point1 is at z=0: accepted.
	p, err := factory.CreatePyramid("p", "0 0 0 3 0 5 3 4 0 0 4 0 1 1 5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Point2().Z)

	// point1 at apex height while the rest sit at z=0: rejected.
	_, err = factory.CreatePyramid("p", "0 0 5 3 0 0 3 4 0 0 4 0 1 1 5")
	assert.ErrorIs(t, err, validate.ErrDegenerateHeight)
}

func TestFactory_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	f := factory.New(factory.WithLogger(zap.New(core)))

	_, err := f.CreateTriangle("t9", "0 0 1 1 2 2")
	require.Error(t, err)

	entries := logs.FilterField(zap.String("id", "t9")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to create shape", entries[0].Message)
	assert.Equal(t, "TRIANGLE", entries[0].ContextMap()["kind"])
}

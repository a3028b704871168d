package pymap3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceEllipsoids(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6378137.0, WGS84.Radius())
	assert.InDelta(t, 1/298.257223563, WGS84.Flattening(), 1e-15)
	assert.InDelta(t, 0.0818191908426215, WGS84.Eccentricity(), 1e-15)
	assert.False(t, WGS84.Spherical())

	assert.InDelta(t, 0.0818191910, GRS80.Eccentricity(), 1e-9)

	assert.True(t, Sphere.Spherical())
	assert.Equal(t, 0.0, Sphere.Flattening())
	assert.Equal(t, 0.0, Sphere.Eccentricity())
}

func TestNewEllipsoid(t *testing.T) {
	t.Parallel()

	e := NewEllipsoid(1000, 0.5)
	assert.Equal(t, 1000.0, e.Radius())
	assert.Equal(t, 0.5, e.Flattening())
	// e^2 = f*(2-f) = 0.75
	assert.InDelta(t, 0.8660254037844386, e.Eccentricity(), 1e-15)
	assert.False(t, e.Spherical())
}

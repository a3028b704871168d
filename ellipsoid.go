package pymap3d

import "math"

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, float64(1.)/298.257223563)

// GRS80 conforming ellipsoid (IUGG 1980).
var GRS80 = NewEllipsoid(6378137, float64(1.)/298.257222101)

// Sphere is a pre-initialized sphere with Earth's equatorial radius.
// Its eccentricity is zero, so geodetic, geocentric, and conformal
// latitude coincide on it.
var Sphere = NewSphere(6378137)

// Ellipsoid is a reference ellipsoid for latitude conversions.
// It is immutable after construction and safe for concurrent use.
type Ellipsoid struct {
	radius       float64
	flattening   float64
	eccentricity float64
	spherical    bool
}

// NewEllipsoid initializes a new reference ellipsoid.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	return &Ellipsoid{
		radius:       radius,
		flattening:   flattening,
		eccentricity: math.Sqrt(flattening * (2 - flattening)),
	}
}

// NewSphere initializes a new reference ellipsoid of zero flattening.
//
// Param radius is the equatorial radius (meters).
//
// The Sphere package-level variable is a pre-initialized sphere
// representing Earth as a terrestrial globe.
func NewSphere(radius float64) *Ellipsoid {
	e := NewEllipsoid(radius, 0)
	e.spherical = true
	return e
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// Eccentricity of the Ellipsoid, sqrt(f*(2-f)).
func (e *Ellipsoid) Eccentricity() float64 {
	return e.eccentricity
}

// Spherical returns true if the ellipsoid was initialized using NewSphere.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// resolve substitutes WGS84 for a nil receiver so that every conversion
// can be called without choosing an ellipsoid.
func (e *Ellipsoid) resolve() *Ellipsoid {
	if e == nil {
		return WGS84
	}
	return e
}

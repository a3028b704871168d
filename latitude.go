// Package pymap3d converts between auxiliary latitudes on a reference
// ellipsoid: geodetic, geocentric, isometric, and conformal latitude.
//
// Equations from J. P. Snyder, "Map Projections - A Working Manual",
// US Geological Survey Professional Paper 1395, US Government Printing
// Office, Washington, DC, 1987, pp. 13-18.
package pymap3d

import (
	"fmt"
	"math"
)

// DomainError reports a latitude outside the valid input range of a
// bounded conversion: [-90,90] in degrees mode, [-pi,pi] in radians mode.
type DomainError struct {
	Lat float64 // offending latitude, in the caller's unit
	Deg bool    // true when the latitude was given in degrees
}

func (e *DomainError) Error() string {
	if e.Deg {
		return fmt.Sprintf("latitude %v out of range: -90 <= latitude <= 90", e.Lat)
	}
	return fmt.Sprintf("latitude %v out of range: -pi <= latitude <= pi", e.Lat)
}

// Divide-then-multiply keeps the poles exact: toRad(90) is bit-equal to
// math.Pi/2 and toDeg(math.Pi/2) is bit-equal to 90.
func toRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

func toDeg(rad float64) float64 {
	return rad / math.Pi * 180
}

// sanitize resolves a nil ellipsoid to WGS84 and converts lat to radians,
// rejecting values outside the bounded-conversion domain.
func sanitize(lat float64, ell *Ellipsoid, deg bool) (float64, *Ellipsoid, error) {
	ell = ell.resolve()
	if deg {
		if math.Abs(lat) > 90 {
			return 0, nil, &DomainError{Lat: lat, Deg: true}
		}
		return toRad(lat), ell, nil
	}
	if math.Abs(lat) > math.Pi {
		return 0, nil, &DomainError{Lat: lat}
	}
	return lat, ell, nil
}

// GeodeticToGeocentric converts geodetic latitude to geocentric latitude.
//
// Param lat is the geodetic latitude.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. Returns a DomainError when lat is outside
// [-90,90] degrees or [-pi,pi] radians.
func (e *Ellipsoid) GeodeticToGeocentric(lat float64, deg bool) (float64, error) {
	rad, ell, err := sanitize(lat, e, deg)
	if err != nil {
		return 0, err
	}
	out := geodetic2geocentric(rad, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// GeocentricToGeodetic converts geocentric latitude to geodetic latitude.
//
// Param lat is the geocentric latitude.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. Returns a DomainError when lat is outside
// [-90,90] degrees or [-pi,pi] radians.
func (e *Ellipsoid) GeocentricToGeodetic(lat float64, deg bool) (float64, error) {
	rad, ell, err := sanitize(lat, e, deg)
	if err != nil {
		return 0, err
	}
	out := geocentric2geodetic(rad, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// GeodeticToIsometric converts geodetic latitude to isometric latitude.
//
// Isometric latitude is an auxiliary latitude proportional to the spacing
// of parallels of latitude on an ellipsoidal Mercator projection. It is
// unbounded: the result diverges to +Inf at the north pole and -Inf at
// the south pole.
//
// Param lat is the geodetic latitude.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. Returns a DomainError when lat is outside
// [-90,90] degrees or [-pi,pi] radians.
func (e *Ellipsoid) GeodeticToIsometric(lat float64, deg bool) (float64, error) {
	rad, ell, err := sanitize(lat, e, deg)
	if err != nil {
		return 0, err
	}
	out := geodetic2isometric(rad, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// IsometricToGeodetic converts isometric latitude to geodetic latitude.
//
// Param lat is the isometric latitude. It is unbounded, so no domain
// check is applied; only the unit conversion.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. The returned error is always nil; it is
// kept for a uniform conversion surface.
func (e *Ellipsoid) IsometricToGeodetic(lat float64, deg bool) (float64, error) {
	ell := e.resolve()
	if deg {
		lat = toRad(lat)
	}
	out := isometric2geodetic(lat, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// GeodeticToConformal converts geodetic latitude to conformal latitude.
//
// Param lat is the geodetic latitude.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. Returns a DomainError when lat is outside
// [-90,90] degrees or [-pi,pi] radians.
func (e *Ellipsoid) GeodeticToConformal(lat float64, deg bool) (float64, error) {
	rad, ell, err := sanitize(lat, e, deg)
	if err != nil {
		return 0, err
	}
	out := geodetic2conformal(rad, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// ConformalToGeodetic converts conformal latitude to geodetic latitude
// using a truncated trigonometric series in powers of eccentricity.
// The truncation error is negligible for real-world ellipsoids (e < 0.09)
// and grows as e approaches 1.
//
// Param lat is the conformal latitude.
// Param deg selects degrees for input and output; otherwise radians.
//
// A nil receiver uses WGS84. Returns a DomainError when lat is outside
// [-90,90] degrees or [-pi,pi] radians.
func (e *Ellipsoid) ConformalToGeodetic(lat float64, deg bool) (float64, error) {
	rad, ell, err := sanitize(lat, e, deg)
	if err != nil {
		return 0, err
	}
	out := conformal2geodetic(rad, ell.eccentricity)
	if deg {
		out = toDeg(out)
	}
	return out, nil
}

// The scalar cores below take a latitude in radians and the ellipsoid
// eccentricity and return radians.

func geodetic2geocentric(lat, ecc float64) float64 {
	// tan is unstable at exactly +-pi/2; the answer there is the input
	if math.Abs(lat) == math.Pi/2 {
		return lat
	}
	return math.Atan((1 - ecc*ecc) * math.Tan(lat))
}

func geocentric2geodetic(lat, ecc float64) float64 {
	if math.Abs(lat) == math.Pi/2 {
		return lat
	}
	return math.Atan(math.Tan(lat) / (1 - ecc*ecc))
}

func geodetic2isometric(lat, ecc float64) float64 {
	// the closed form is singular at the poles and unstable near them
	if math.Abs(lat-math.Pi/2) <= 1e-9 {
		return math.Inf(1)
	}
	if math.Abs(-lat-math.Pi/2) <= 1e-9 {
		return math.Inf(-1)
	}
	return math.Asinh(math.Tan(lat)) - ecc*math.Atanh(ecc*math.Sin(lat))
}

func isometric2geodetic(lat, ecc float64) float64 {
	// no direct closed form: go through conformal latitude
	conformal := 2*math.Atan(math.Exp(lat)) - math.Pi/2
	return conformal2geodetic(conformal, ecc)
}

func geodetic2conformal(lat, ecc float64) float64 {
	s := math.Sin(lat)
	// (1+s)/(1-s) degenerates at the north pole; both poles take the
	// explicit branch so neither depends on the limit of the formula
	if s == 1 {
		return math.Pi / 2
	}
	if s == -1 {
		return -math.Pi / 2
	}
	f1 := 1 - ecc*s
	f2 := 1 + ecc*s
	f3 := 1 - s
	f4 := 1 + s
	return 2*math.Atan(math.Sqrt((f4/f3)*math.Pow(f1/f2, ecc))) - math.Pi/2
}

func conformal2geodetic(lat, ecc float64) float64 {
	e2 := ecc * ecc
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4
	f1 := e2/2 + 5*e4/24 + e6/12 + 13*e8/360
	f2 := 7*e4/48 + 29*e6/240 + 811*e8/11520
	f3 := 7*e6/120 + 81*e8/1120
	f4 := 4279 * e8 / 161280
	return lat +
		f1*math.Sin(2*lat) +
		f2*math.Sin(4*lat) +
		f3*math.Sin(6*lat) +
		f4*math.Sin(8*lat)
}

package pymap3d

import "fmt"

// convertSlice applies a scalar conversion to every element of lats.
// It aborts on the first failing element and returns that element's
// error wrapped with its index; no partial result is returned.
func convertSlice(lats []float64, fn func(float64) (float64, error)) ([]float64, error) {
	if lats == nil {
		return nil, nil
	}
	out := make([]float64, len(lats))
	for i, lat := range lats {
		v, err := fn(lat)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// GeodeticToGeocentricSlice is the element-wise form of GeodeticToGeocentric.
func (e *Ellipsoid) GeodeticToGeocentricSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.GeodeticToGeocentric(lat, deg)
	})
}

// GeocentricToGeodeticSlice is the element-wise form of GeocentricToGeodetic.
func (e *Ellipsoid) GeocentricToGeodeticSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.GeocentricToGeodetic(lat, deg)
	})
}

// GeodeticToIsometricSlice is the element-wise form of GeodeticToIsometric.
func (e *Ellipsoid) GeodeticToIsometricSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.GeodeticToIsometric(lat, deg)
	})
}

// IsometricToGeodeticSlice is the element-wise form of IsometricToGeodetic.
func (e *Ellipsoid) IsometricToGeodeticSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.IsometricToGeodetic(lat, deg)
	})
}

// GeodeticToConformalSlice is the element-wise form of GeodeticToConformal.
func (e *Ellipsoid) GeodeticToConformalSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.GeodeticToConformal(lat, deg)
	})
}

// ConformalToGeodeticSlice is the element-wise form of ConformalToGeodetic.
func (e *Ellipsoid) ConformalToGeodeticSlice(lats []float64, deg bool) ([]float64, error) {
	return convertSlice(lats, func(lat float64) (float64, error) {
		return e.ConformalToGeodetic(lat, deg)
	})
}

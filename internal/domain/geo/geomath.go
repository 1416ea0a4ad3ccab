// Package geo implements the distance and offset math used by discovery.
package geo

import (
	"fmt"
	"math"

	"editorradar/internal/domain/entity"
	"editorradar/internal/errors"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
	// KmPerDegree is the equirectangular approximation of one degree of latitude.
	KmPerDegree = 111.0

	minCosLat = 1e-6
)

// ErrInvalidInput is returned for NaN, infinite or out-of-range inputs.
var ErrInvalidInput = errors.New("invalid geo input")

// ValidatePoint checks that p is a finite WGS84 coordinate.
func ValidatePoint(p entity.GeoPoint) error {
	if !finite(p.Lat) || !finite(p.Lng) {
		return fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrInvalidInput, p.Lat, p.Lng)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidInput, p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidInput, p.Lng)
	}

	return nil
}

// DistanceKm returns the great-circle distance between a and b.
func DistanceKm(a, b entity.GeoPoint) (float64, error) {
	if err := ValidatePoint(a); err != nil {
		return 0, err
	}
	if err := ValidatePoint(b); err != nil {
		return 0, err
	}

	return haversine(a, b), nil
}

// OffsetPoint moves origin by distanceKm along bearing (radians, clockwise from north).
// The result latitude is clamped to the poles and the longitude wrapped into [-180, 180].
func OffsetPoint(origin entity.GeoPoint, bearing, distanceKm float64) (entity.GeoPoint, error) {
	if err := ValidatePoint(origin); err != nil {
		return entity.GeoPoint{}, err
	}
	if !finite(bearing) {
		return entity.GeoPoint{}, fmt.Errorf("%w: non-finite bearing", ErrInvalidInput)
	}
	if !finite(distanceKm) || distanceKm < 0 {
		return entity.GeoPoint{}, fmt.Errorf("%w: distance %v", ErrInvalidInput, distanceKm)
	}

	cosLat := math.Max(math.Cos(toRadians(origin.Lat)), minCosLat)
	latOffset := distanceKm / KmPerDegree * math.Cos(bearing)
	lngOffset := distanceKm / (KmPerDegree * cosLat) * math.Sin(bearing)

	return entity.GeoPoint{
		Lat: clamp(origin.Lat+latOffset, -90, 90),
		Lng: wrapLng(origin.Lng + lngOffset),
	}, nil
}

// KmToLatDegrees converts a north-south distance to degrees of latitude.
func KmToLatDegrees(km float64) float64 {
	return km / KmPerDegree
}

// KmToLngDegrees converts an east-west distance at lat to degrees of longitude.
func KmToLngDegrees(km, lat float64) float64 {
	return km / (KmPerDegree * math.Max(math.Cos(toRadians(lat)), minCosLat))
}

// RoundKm rounds a distance to one decimal place.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func haversine(a, b entity.GeoPoint) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}

	return lng
}

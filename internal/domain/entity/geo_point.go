package entity

import "github.com/paulmach/orb"

// GeoPoint is a WGS84 coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Orb returns the point in orb's (lng, lat) order.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// GeoPointFromOrb converts an orb.Point back into a GeoPoint.
func GeoPointFromOrb(pt orb.Point) GeoPoint {
	return GeoPoint{Lat: pt.Lat(), Lng: pt.Lon()}
}

// Place is the result of reverse geocoding a coordinate.
type Place struct {
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

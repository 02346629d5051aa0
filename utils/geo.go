package utils

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ValidateLat checks that a latitude is within [-90, 90].
func ValidateLat(lat float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLon checks that a longitude is within [-180, 180].
func ValidateLon(lon float64) error {
	if lon < -180 || lon > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// DistanceKm returns the haversine distance in kilometers between two
// lat/lon points.
func DistanceKm(aLat, aLon, bLat, bLon float64) float64 {
	// orb points are (lon, lat).
	return geo.Distance(orb.Point{aLon, aLat}, orb.Point{bLon, bLat}) / 1000
}

package utils

import "testing"

func TestValidateLat(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		wantErr bool
	}{
		{"equator", 0, false},
		{"nairobi", -1.2921, false},
		{"north pole", 90, false},
		{"south pole", -90, false},
		{"too far north", 90.1, true},
		{"too far south", -91, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLat(tt.lat)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLat(%v) = %v, wantErr %v", tt.lat, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLon(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		wantErr bool
	}{
		{"meridian", 0, false},
		{"nairobi", 36.8219, false},
		{"date line east", 180, false},
		{"date line west", -180, false},
		{"past date line", 180.5, true},
		{"far west", -181, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLon(tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLon(%v) = %v, wantErr %v", tt.lon, err, tt.wantErr)
			}
		})
	}
}

func TestDistanceKm(t *testing.T) {
	// Same point.
	if d := DistanceKm(-1.2921, 36.8219, -1.2921, 36.8219); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
	// Nairobi to Mombasa is roughly 440 km as the crow flies.
	d := DistanceKm(-1.2921, 36.8219, -4.0435, 39.6682)
	if d < 400 || d > 480 {
		t.Errorf("Nairobi-Mombasa = %v km, want ~440", d)
	}
	// Symmetry.
	if back := DistanceKm(-4.0435, 39.6682, -1.2921, 36.8219); back != d {
		t.Errorf("asymmetric distance: %v vs %v", d, back)
	}
}

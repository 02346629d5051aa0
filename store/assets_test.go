package store

import (
	"testing"

	"p9e.in/infrasight/models"
)

func TestAddAmbulanceValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddAmbulance("Langata", "Unit 1", "", "Mbagathi", "Depot A"); !IsValidation(err) {
		t.Errorf("empty plate: err = %v, want validation error", err)
	}
	if _, err := s.AddAmbulance("Langata", "", "KDA 123X", "Mbagathi", "Depot A"); !IsValidation(err) {
		t.Errorf("empty name: err = %v, want validation error", err)
	}
	if n := rowCount(t, s, &models.EmergencyAsset{}); n != 0 {
		t.Fatalf("asset rows = %d after rejected writes, want 0", n)
	}
}

func TestListAmbulancesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	plates := []string{"KDA 001A", "KDA 002B", "KDA 003C"}
	for i, plate := range plates {
		if _, err := s.AddAmbulance("Langata", "Unit", plate, "Mbagathi", "Depot"); err != nil {
			t.Fatalf("add ambulance %d: %v", i, err)
		}
	}
	// Another constituency's ambulance must not leak into the list.
	if _, err := s.AddAmbulance("Kibra", "Unit", "KDB 900Z", "", ""); err != nil {
		t.Fatalf("add ambulance: %v", err)
	}

	got, err := s.ListAmbulances("Langata")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(plates) {
		t.Fatalf("len = %d, want %d", len(got), len(plates))
	}
	for i, a := range got {
		if a.NumberPlate != plates[i] {
			t.Errorf("ambulance %d plate = %q, want %q", i, a.NumberPlate, plates[i])
		}
		if a.AssetType != models.AssetTypeAmbulance {
			t.Errorf("ambulance %d asset_type = %q", i, a.AssetType)
		}
	}
}

func TestAddAmbulanceDuplicatePlatesAccepted(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 2; i++ {
		if _, err := s.AddAmbulance("Langata", "Unit", "KDA 123X", "", ""); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if n := rowCount(t, s, &models.EmergencyAsset{}); n != 2 {
		t.Fatalf("asset rows = %d, want 2", n)
	}
}

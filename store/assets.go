package store

import (
	"fmt"

	"p9e.in/infrasight/models"
)

// AddAmbulance appends an ambulance to the registry for a
// constituency. Name and number plate are required; duplicate plates
// are accepted. There is no update or delete path.
func (s *Store) AddAmbulance(constituencyName, name, plate, hospital, location string) (*models.EmergencyAsset, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if plate == "" {
		return nil, &ValidationError{Field: "number_plate", Reason: "must not be empty"}
	}
	asset := models.EmergencyAsset{
		ConstituencyName: constituencyName,
		AssetType:        models.AssetTypeAmbulance,
		Name:             name,
		NumberPlate:      plate,
		AttachedHospital: hospital,
		Location:         location,
	}
	if err := s.db.Create(&asset).Error; err != nil {
		return nil, fmt.Errorf("add ambulance: %w", err)
	}
	return &asset, nil
}

// ListAmbulances returns the ambulances registered for a constituency
// in insertion order.
func (s *Store) ListAmbulances(constituencyName string) ([]models.EmergencyAsset, error) {
	var assets []models.EmergencyAsset
	err := s.db.
		Where("constituency_name = ? AND asset_type = ?", constituencyName, models.AssetTypeAmbulance).
		Order("id").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("list ambulances: %w", err)
	}
	return assets, nil
}

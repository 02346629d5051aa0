// models/emergency_asset.go
package models

// Asset types. Only ambulances are registered today; the column is an
// open string so other asset kinds can be added without a migration.
const AssetTypeAmbulance = "ambulance"

// EmergencyAsset is an append-only registry entry scoped to a
// constituency by name. The scoping is a soft reference — rows are
// accepted for constituency names that have no profile row yet.
type EmergencyAsset struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ConstituencyName string `gorm:"size:100;not null;index" json:"constituency_name"`
	AssetType        string `gorm:"size:50;not null" json:"asset_type"`
	Name             string `gorm:"size:255" json:"name"`
	NumberPlate      string `gorm:"size:50" json:"number_plate"`
	AttachedHospital string `gorm:"size:255" json:"attached_hospital"`
	Location         string `gorm:"size:255" json:"location"`
}

// TableName specifies the table name for EmergencyAsset
func (EmergencyAsset) TableName() string {
	return "emergency_assets"
}

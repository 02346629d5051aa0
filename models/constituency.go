// models/constituency.go
package models

// Constituency holds the profile-and-metrics record for one
// constituency. Name is the natural key: there is at most one row per
// name, ever, enforced by the unique index and the upsert in the store.
//
// The index metrics are optional and nullable — a save that omits one
// writes NULL, not zero. Only the two asset counts default to zero.
type Constituency struct {
	ID                  uint     `gorm:"primaryKey" json:"id"`
	Name                string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	AmbulancesCount     int      `gorm:"default:0" json:"ambulances_count"`
	HospitalsCount      int      `gorm:"default:0" json:"hospitals_count"`
	EqualityIndex       *float64 `json:"equality_index,omitempty"`
	NeedFactor          *float64 `json:"need_factor,omitempty"`
	RoadDensity         *float64 `json:"road_density,omitempty"`
	ElectricityCoverage *float64 `json:"electricity_coverage,omitempty"`
	WaterAccess         *float64 `json:"water_access,omitempty"`
	HealthPer10k        *float64 `json:"health_per_10k,omitempty"`
	SchoolsPer10k       *float64 `json:"schools_per_10k,omitempty"`
	EmergencyUnitsIndex *float64 `json:"emergency_units_index,omitempty"`
}

// TableName specifies the table name for Constituency
func (Constituency) TableName() string {
	return "constituencies"
}

// models/project.go
package models

import "slices"

// Project lifecycle statuses.
const (
	StatusPlanned   = "Planned"
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
)

// Citizen-verification statuses.
const (
	VerificationPending  = "Pending"
	VerificationVerified = "Verified"
	VerificationFlagged  = "Flagged"
	VerificationUnknown  = "Unknown"
)

var (
	projectStatuses      = []string{StatusPlanned, StatusOngoing, StatusCompleted}
	verificationStatuses = []string{VerificationPending, VerificationVerified, VerificationFlagged, VerificationUnknown}
)

// ValidProjectStatus reports whether s is one of the project statuses.
func ValidProjectStatus(s string) bool {
	return slices.Contains(projectStatuses, s)
}

// ValidVerificationStatus reports whether s is one of the verification
// statuses.
func ValidVerificationStatus(s string) bool {
	return slices.Contains(verificationStatuses, s)
}

// Project is a development project scoped to a constituency by name.
// Append-only from the public API; identified by surrogate id for later
// lookup. Lat and Lon are independent optionals — a project may carry
// one, both, or neither.
type Project struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	ConstituencyName   string   `gorm:"size:100;not null;index" json:"constituency_name"`
	Name               string   `gorm:"size:255;not null" json:"name"`
	Status             string   `gorm:"size:50" json:"status"`
	Budget             float64  `json:"budget"`
	Implementer        string   `gorm:"size:255" json:"implementer"`
	Timeline           string   `gorm:"size:255" json:"timeline"`
	VerificationStatus string   `gorm:"size:50" json:"verification_status"`
	Location           string   `gorm:"size:255" json:"location"`
	Description        string   `gorm:"type:text" json:"description"`
	Lat                *float64 `json:"lat,omitempty"`
	Lon                *float64 `json:"lon,omitempty"`

	// Evidence rows ride on the project: deleting a project deletes its
	// media rows at the database level.
	Media []ProjectMedia `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// Geotagged reports whether the project carries both coordinates.
func (p *Project) Geotagged() bool {
	return p.Lat != nil && p.Lon != nil
}

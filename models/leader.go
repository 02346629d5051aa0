// models/leader.go
package models

// Leader is a constituency leader login. The constituency field is a
// denormalized label, not a reference to a constituencies row — a leader
// can exist before any profile has been saved for their constituency.
type Leader struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Constituency string `gorm:"size:100;not null" json:"constituency"`
}

// TableName specifies the table name for Leader
func (Leader) TableName() string {
	return "leaders"
}

// models/project_media.go
package models

import "time"

// Media types, derived from the upload's file extension.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// ProjectMedia records one citizen-submitted evidence file for a
// project. FilePath is relative to the data directory; the file itself
// lives under the uploads root. CreatedAt is assigned at insert and
// never updated — rows are write-once.
type ProjectMedia struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	MediaType    string    `gorm:"size:10;not null" json:"media_type"`
	FilePath     string    `gorm:"size:500;not null" json:"file_path"`
	Caption      string    `gorm:"size:500" json:"caption"`
	UploaderName string    `gorm:"size:255" json:"uploader_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for ProjectMedia
func (ProjectMedia) TableName() string {
	return "project_media"
}

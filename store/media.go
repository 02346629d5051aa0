package store

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"p9e.in/infrasight/models"
)

// DefaultUploader is recorded when the citizen leaves the name blank.
const DefaultUploader = "Anonymous"

// Upload extensions accepted by the platform. Anything else is
// rejected before it reaches SaveMedia.
var allowedUploadExtensions = map[string]string{
	".jpg":  models.MediaTypeImage,
	".jpeg": models.MediaTypeImage,
	".png":  models.MediaTypeImage,
	".mp4":  models.MediaTypeVideo,
	".mov":  models.MediaTypeVideo,
	".avi":  models.MediaTypeVideo,
}

// AllowedUpload reports whether the filename's extension is accepted.
func AllowedUpload(filename string) bool {
	_, ok := allowedUploadExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// MediaTypeForFilename derives image/video from the file extension.
// The second result is false for extensions the upload filter rejects.
func MediaTypeForFilename(filename string) (string, bool) {
	mt, ok := allowedUploadExtensions[strings.ToLower(filepath.Ext(filename))]
	return mt, ok
}

// SaveMedia binds uploaded bytes to a project. The stored name is the
// original base name prefixed with the project id (p<id>_<basename>),
// which namespaces evidence per project; a repeat upload of the same
// name to the same project overwrites the earlier bytes while still
// inserting a fresh metadata row.
//
// The write is two-phase: content goes to a temp file in the evidence
// root first, the metadata row is inserted, and only then is the temp
// file renamed onto the final path. A disk failure aborts before the
// insert, and an insert failure removes the temp file, so no metadata
// row ever points at a file that was never written.
//
// Returns the stored path relative to the data directory.
func (s *Store) SaveMedia(projectID uint, filename string, content []byte, mediaType, caption, uploaderName string) (string, error) {
	if filename == "" {
		return "", &ValidationError{Field: "filename", Reason: "must not be empty"}
	}
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		return "", &ValidationError{Field: "media_type", Reason: "unknown media type " + mediaType}
	}
	if uploaderName == "" {
		uploaderName = DefaultUploader
	}

	uploadsDir := s.UploadsDir()
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	stored := fmt.Sprintf("p%d_%s", projectID, filepath.Base(filename))
	relPath := path.Join(UploadsDirName, stored)
	finalPath := filepath.Join(uploadsDir, stored)
	tmpPath := finalPath + ".tmp-" + uuid.NewString()

	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}

	media := models.ProjectMedia{
		ProjectID:    projectID,
		MediaType:    mediaType,
		FilePath:     relPath,
		Caption:      caption,
		UploaderName: uploaderName,
	}
	if err := s.db.Create(&media).Error; err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("record evidence: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		// The row must not outlive a file that never landed.
		if delErr := s.db.Delete(&models.ProjectMedia{}, media.ID).Error; delErr != nil {
			log.Printf("orphaned media row %d after failed rename: %v", media.ID, delErr)
		}
		os.Remove(tmpPath)
		return "", fmt.Errorf("commit evidence file: %w", err)
	}

	return relPath, nil
}

// ListMedia returns a project's evidence rows newest first.
func (s *Store) ListMedia(projectID uint) ([]models.ProjectMedia, error) {
	var media []models.ProjectMedia
	err := s.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&media).Error
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return media, nil
}

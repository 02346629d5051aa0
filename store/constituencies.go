package store

import (
	"fmt"

	"gorm.io/gorm/clause"

	"p9e.in/infrasight/models"
)

// UpsertMetrics saves the profile-and-metrics record for a
// constituency. The row is keyed on name: the first save creates it,
// every later save overwrites every metric column with the supplied
// values — including overwriting a previously set metric with nil.
// This is a single conditional write, not read-then-write, so two
// concurrent saves for the same name converge to the last writer
// without ever duplicating the row.
func (s *Store) UpsertMetrics(c *models.Constituency) error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(c).Error
	if err != nil {
		return fmt.Errorf("upsert constituency: %w", err)
	}
	return nil
}

// GetConstituency returns the full metrics row for name, or
// ErrNotFound.
func (s *Store) GetConstituency(name string) (*models.Constituency, error) {
	var c models.Constituency
	if err := s.db.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, translate(err, "get constituency")
	}
	return &c, nil
}

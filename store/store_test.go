package store

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"p9e.in/infrasight/models"
)

// newTestStore opens a throwaway SQLite database in a temp dir with the
// full schema and foreign keys on, mirroring what config.Initialize
// provisions in production.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(&models.Leader{}, &models.Constituency{},
		&models.EmergencyAsset{}, &models.Project{}, &models.ProjectMedia{})
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(db, dir)
}

// rowCount counts the rows for a model.
func rowCount(t *testing.T, s *Store, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := s.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func f64(v float64) *float64 { return &v }

// Package store is the persistence and evidence-storage layer: leader
// credentials, constituency metrics, the emergency-asset and project
// registries, and the binding between project rows and on-disk evidence
// files. It is consumed by the HTTP handlers and owns no transport or
// presentation concerns.
package store

import (
	"path/filepath"

	"gorm.io/gorm"
)

// UploadsDirName is the evidence root under the data directory.
const UploadsDirName = "uploads"

// Store wraps the database handle and the data directory that holds
// the evidence files. Each call acquires a connection from the pool,
// does its work and returns it — no transaction is held across calls.
type Store struct {
	db      *gorm.DB
	dataDir string
}

// New returns a Store over db writing evidence files under dataDir.
func New(db *gorm.DB, dataDir string) *Store {
	return &Store{db: db, dataDir: dataDir}
}

// UploadsDir returns the absolute evidence root directory.
func (s *Store) UploadsDir() string {
	return filepath.Join(s.dataDir, UploadsDirName)
}

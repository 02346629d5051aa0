package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/infrasight/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20260115_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Leader{}, &models.Constituency{},
					&models.EmergencyAsset{}, &models.Project{}, &models.ProjectMedia{})
			},
		},
	})
	return m.Migrate()
}

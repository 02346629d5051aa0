package store

import (
	"fmt"
	"sort"

	"p9e.in/infrasight/models"
	"p9e.in/infrasight/utils"
)

// AddProject validates and appends a development project. The project
// is scoped to its constituency by name — the name does not have to
// match an existing constituency profile. Lat and Lon are independent:
// either may be set without the other, and each is range-checked when
// present.
func (s *Store) AddProject(p *models.Project) error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Budget < 0 {
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	if !models.ValidProjectStatus(p.Status) {
		return &ValidationError{Field: "status", Reason: "unknown status " + p.Status}
	}
	if !models.ValidVerificationStatus(p.VerificationStatus) {
		return &ValidationError{Field: "verification_status", Reason: "unknown status " + p.VerificationStatus}
	}
	if p.Lat != nil {
		if err := utils.ValidateLat(*p.Lat); err != nil {
			return &ValidationError{Field: "lat", Reason: err.Error()}
		}
	}
	if p.Lon != nil {
		if err := utils.ValidateLon(*p.Lon); err != nil {
			return &ValidationError{Field: "lon", Reason: err.Error()}
		}
	}
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("add project: %w", err)
	}
	return nil
}

// ListProjectsByConstituency returns every project for a constituency
// in insertion order, full column set.
func (s *Store) ListProjectsByConstituency(constituencyName string) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("constituency_name = ?", constituencyName).
		Order("id").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProjectByID returns one project's full record, or ErrNotFound.
func (s *Store) GetProjectByID(id uint) (*models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err, "get project")
	}
	return &p, nil
}

// DeleteProject removes a project. Its media rows go with it via the
// ON DELETE CASCADE constraint; the evidence files themselves are left
// on disk. Deleting a missing id returns ErrNotFound.
func (s *Store) DeleteProject(id uint) error {
	res := s.db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ProjectsNear returns the geotagged projects within radiusKm of the
// given point, nearest first. Projects without both coordinates are
// never candidates.
func (s *Store) ProjectsNear(lat, lon, radiusKm float64) ([]models.Project, error) {
	if err := utils.ValidateLat(lat); err != nil {
		return nil, &ValidationError{Field: "lat", Reason: err.Error()}
	}
	if err := utils.ValidateLon(lon); err != nil {
		return nil, &ValidationError{Field: "lon", Reason: err.Error()}
	}
	if radiusKm <= 0 {
		return nil, &ValidationError{Field: "radius_km", Reason: "must be positive"}
	}

	var candidates []models.Project
	err := s.db.
		Where("lat IS NOT NULL AND lon IS NOT NULL").
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("list geotagged projects: %w", err)
	}

	type scored struct {
		project models.Project
		km      float64
	}
	var within []scored
	for _, p := range candidates {
		km := utils.DistanceKm(lat, lon, *p.Lat, *p.Lon)
		if km <= radiusKm {
			within = append(within, scored{project: p, km: km})
		}
	}
	sort.Slice(within, func(i, j int) bool { return within[i].km < within[j].km })
	projects := make([]models.Project, 0, len(within))
	for _, sc := range within {
		projects = append(projects, sc.project)
	}
	return projects, nil
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/middleware"
	"p9e.in/infrasight/models"
)

type projectReq struct {
	Name               string   `json:"name"`
	Status             string   `json:"status"`
	Budget             float64  `json:"budget"`
	Implementer        string   `json:"implementer"`
	Timeline           string   `json:"timeline"`
	VerificationStatus string   `json:"verification_status"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	Lat                *float64 `json:"lat"`
	Lon                *float64 `json:"lon"`
}

// CreateProject appends a development project to the authenticated
// leader's constituency.
func CreateProject(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	var req projectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	p := models.Project{
		ConstituencyName:   claims.Constituency,
		Name:               req.Name,
		Status:             req.Status,
		Budget:             req.Budget,
		Implementer:        req.Implementer,
		Timeline:           req.Timeline,
		VerificationStatus: req.VerificationStatus,
		Location:           req.Location,
		Description:        req.Description,
		Lat:                req.Lat,
		Lon:                req.Lon,
	}
	if err := config.Data.AddProject(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListProjects returns every project for a constituency in insertion
// order. Public.
func ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := config.Data.ListProjectsByConstituency(mux.Vars(r)["name"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// GetProject returns one project by id. Public.
func GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	p, err := config.Data.GetProjectByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject removes a project belonging to the leader's own
// constituency; its media rows cascade away with it.
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	p, err := config.Data.GetProjectByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if p.ConstituencyName != claims.Constituency {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := config.Data.DeleteProject(id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NearbyProjects lists geotagged projects within radius_km of a point,
// nearest first. Backs the citizen map view.
func NearbyProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		http.Error(w, "lat parameter required", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		http.Error(w, "lon parameter required", http.StatusBadRequest)
		return
	}
	radiusKm := 10.0
	if v := q.Get("radius_km"); v != "" {
		radiusKm, err = strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid radius_km", http.StatusBadRequest)
			return
		}
	}
	projects, err := config.Data.ProjectsNear(lat, lon, radiusKm)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

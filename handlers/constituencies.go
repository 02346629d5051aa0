package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/middleware"
	"p9e.in/infrasight/models"
)

type metricsReq struct {
	AmbulancesCount     int      `json:"ambulances_count"`
	HospitalsCount      int      `json:"hospitals_count"`
	EqualityIndex       *float64 `json:"equality_index"`
	NeedFactor          *float64 `json:"need_factor"`
	RoadDensity         *float64 `json:"road_density"`
	ElectricityCoverage *float64 `json:"electricity_coverage"`
	WaterAccess         *float64 `json:"water_access"`
	HealthPer10k        *float64 `json:"health_per_10k"`
	SchoolsPer10k       *float64 `json:"schools_per_10k"`
	EmergencyUnitsIndex *float64 `json:"emergency_units_index"`
}

// SaveConstituencyMetrics upserts the profile for the authenticated
// leader's own constituency. Every call is a full replace: metrics the
// body omits are saved as null, not kept from the previous save.
func SaveConstituencyMetrics(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	var req metricsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c := models.Constituency{
		Name:                claims.Constituency,
		AmbulancesCount:     req.AmbulancesCount,
		HospitalsCount:      req.HospitalsCount,
		EqualityIndex:       req.EqualityIndex,
		NeedFactor:          req.NeedFactor,
		RoadDensity:         req.RoadDensity,
		ElectricityCoverage: req.ElectricityCoverage,
		WaterAccess:         req.WaterAccess,
		HealthPer10k:        req.HealthPer10k,
		SchoolsPer10k:       req.SchoolsPer10k,
		EmergencyUnitsIndex: req.EmergencyUnitsIndex,
	}
	if err := config.Data.UpsertMetrics(&c); err != nil {
		writeStoreError(w, err)
		return
	}
	saved, err := config.Data.GetConstituency(claims.Constituency)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetConstituency returns one constituency's metrics profile. Public:
// citizens explore equality data without a login.
func GetConstituency(w http.ResponseWriter, r *http.Request) {
	c, err := config.Data.GetConstituency(mux.Vars(r)["name"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

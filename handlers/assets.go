package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/middleware"
)

type ambulanceReq struct {
	Name             string `json:"name"`
	NumberPlate      string `json:"number_plate"`
	AttachedHospital string `json:"attached_hospital"`
	Location         string `json:"location"`
}

// RegisterAmbulance appends an ambulance to the authenticated leader's
// constituency registry.
func RegisterAmbulance(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	var req ambulanceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	asset, err := config.Data.AddAmbulance(claims.Constituency, req.Name, req.NumberPlate, req.AttachedHospital, req.Location)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// ListAmbulances returns a constituency's ambulances in insertion
// order.
func ListAmbulances(w http.ResponseWriter, r *http.Request) {
	assets, err := config.Data.ListAmbulances(mux.Vars(r)["name"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

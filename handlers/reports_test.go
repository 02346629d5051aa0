package handlers_test

import (
	"net/http"
	"testing"

	"github.com/xuri/excelize/v2"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/models"
)

func TestExportConstituencyExcel(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	p := models.Project{
		ConstituencyName:   config.DefaultLeaderConstituency,
		Name:               "Borehole Drilling",
		Status:             models.StatusCompleted,
		Budget:             80000,
		VerificationStatus: models.VerificationVerified,
	}
	if err := config.Data.AddProject(&p); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if _, err := config.Data.AddAmbulance(config.DefaultLeaderConstituency, "Unit 1", "KDA 123X", "Mbagathi", "Depot"); err != nil {
		t.Fatalf("seed ambulance: %v", err)
	}

	rec := doJSON(t, h, "GET", "/api/v1/constituencies/"+config.DefaultLeaderConstituency+"/report.xlsx", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content-type = %q", ct)
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	name, err := f.GetCellValue("Projects", "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Borehole Drilling" {
		t.Errorf("Projects!B3 = %q, want Borehole Drilling", name)
	}
	plate, err := f.GetCellValue("Ambulances", "C2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if plate != "KDA 123X" {
		t.Errorf("Ambulances!C2 = %q, want KDA 123X", plate)
	}
}

func TestExportConstituencyCSV(t *testing.T) {
	h := setupServer(t)
	token := login(t, h)

	rec := doJSON(t, h, "GET", "/api/v1/constituencies/"+config.DefaultLeaderConstituency+"/report.csv", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content-type = %q", ct)
	}
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/models"
)

// ExportConstituencyExcel exports a constituency's projects and
// ambulance registry as an .xlsx download.
func ExportConstituencyExcel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	projects, err := config.Data.ListProjectsByConstituency(name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	ambulances, err := config.Data.ListAmbulances(name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	f, err := buildConstituencyWorkbook(name, projects, ambulances)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_report_%s.xlsx", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportConstituencyCSV exports a constituency's projects as CSV.
func ExportConstituencyCSV(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	projects, err := config.Data.ListProjectsByConstituency(name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Write(projectHeader)
	for _, p := range projects {
		cw.Write(projectRow(&p))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, "Failed to write CSV", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_projects_%s.csv", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

var projectHeader = []string{"ID", "Name", "Status", "Budget", "Implementer", "Timeline", "Verification", "Location", "Description", "Lat", "Lon"}

func projectRow(p *models.Project) []string {
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Name,
		p.Status,
		strconv.FormatFloat(p.Budget, 'f', 2, 64),
		p.Implementer,
		p.Timeline,
		p.VerificationStatus,
		p.Location,
		p.Description,
		formatCoord(p.Lat),
		formatCoord(p.Lon),
	}
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

func buildConstituencyWorkbook(name string, projects []models.Project, ambulances []models.EmergencyAsset) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	// Projects sheet
	sheet := "Projects"
	f.SetSheetName("Sheet1", sheet)
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s — Development Projects", name))
	for i, h := range projectHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(projectHeader), 2)
	f.SetCellStyle(sheet, "A2", endHeader, headerStyle)
	for rowIdx, p := range projects {
		for colIdx, v := range projectRow(&p) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Ambulances sheet
	ambSheet := "Ambulances"
	if _, err := f.NewSheet(ambSheet); err != nil {
		return nil, err
	}
	ambHeader := []string{"ID", "Name", "Number Plate", "Attached Hospital", "Location"}
	for i, h := range ambHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ambSheet, cell, h)
	}
	endAmb, _ := excelize.CoordinatesToCellName(len(ambHeader), 1)
	f.SetCellStyle(ambSheet, "A1", endAmb, headerStyle)
	for rowIdx, a := range ambulances {
		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Name,
			a.NumberPlate,
			a.AttachedHospital,
			a.Location,
		}
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(ambSheet, cell, v)
		}
	}

	return f, nil
}

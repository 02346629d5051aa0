package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/infrasight/config"
	"p9e.in/infrasight/handlers"
	"p9e.in/infrasight/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// Citizen-facing reads
	r.HandleFunc("/constituencies/{name}", handlers.GetConstituency).Methods("GET")
	r.HandleFunc("/constituencies/{name}/ambulances", handlers.ListAmbulances).Methods("GET")
	r.HandleFunc("/constituencies/{name}/projects", handlers.ListProjects).Methods("GET")
	r.HandleFunc("/projects/nearby", handlers.NearbyProjects).Methods("GET")
	r.HandleFunc("/projects/{id:[0-9]+}", handlers.GetProject).Methods("GET")
	r.HandleFunc("/projects/{id:[0-9]+}/media", handlers.ListProjectMedia).Methods("GET")

	// Citizen evidence upload and the stored files themselves
	r.HandleFunc("/projects/{id:[0-9]+}/media", handlers.UploadProjectMedia).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Data.UploadsDir()))),
	)

	// =====================================================
	// Leader Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")
	api.HandleFunc("/constituency/metrics", handlers.SaveConstituencyMetrics).Methods("POST")
	api.HandleFunc("/ambulances", handlers.RegisterAmbulance).Methods("POST")
	api.HandleFunc("/projects", handlers.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id:[0-9]+}", handlers.DeleteProject).Methods("DELETE")
	api.HandleFunc("/constituencies/{name}/report.xlsx", handlers.ExportConstituencyExcel).Methods("GET")
	api.HandleFunc("/constituencies/{name}/report.csv", handlers.ExportConstituencyCSV).Methods("GET")

	return r
}

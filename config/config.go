package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"p9e.in/infrasight/store"
)

var (
	DB   *gorm.DB
	Data *store.Store
)

// Connect loads the environment, opens the database, provisions the
// schema and seeds the default leader. The platform runs on a single
// local SQLite file unless DB_DRIVER=postgres is set.
func Connect() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	db, err := Open(driver, dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db

	s, err := Initialize(DB, DataDir())
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	Data = s
}

// Open opens a gorm handle for the given driver and DSN. An empty
// driver means SQLite; an empty SQLite DSN defaults to a local file
// under the data directory. SQLite connections get foreign-key
// enforcement switched on, which the media cascade depends on.
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "", "sqlite":
		if dsn == "" {
			dsn = filepath.Join(DataDir(), "infrasight.db")
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		// The pragma is per-connection, so it has to ride the DSN.
		if !strings.Contains(dsn, "?") {
			dsn += "?_foreign_keys=on"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

// Initialize provisions the schema, creates the evidence root and
// seeds the default leader. Idempotent and non-destructive: safe to
// call on every process start.
func Initialize(db *gorm.DB, dataDir string) (*store.Store, error) {
	if err := Migrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dataDir, store.UploadsDirName), 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	s := store.New(db, dataDir)
	if err := SeedDefaultLeader(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DataDir returns the directory holding the SQLite file and the
// evidence uploads.
func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

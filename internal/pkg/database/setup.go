package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/vantascaling/website/app/models"
)

var DB *gorm.DB

// SetupDatabase opens (or creates) the local SQLite file and migrates the
// schema. SQLite serializes writes internally, which is all the concurrency
// control this application needs: every request touches one row in one table.
func SetupDatabase(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := DB.AutoMigrate(
		&models.ContactMessage{},
		&models.Appointment{},
		&models.Purchase{},
	); err != nil {
		panic(err)
	}

	log.Printf("connected to SQLite database at %s", path)
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the shared handle. Used by tests to point the controllers
// at an in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}

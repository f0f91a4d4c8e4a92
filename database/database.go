package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens a sqlite database and migrates the given models. Each service
// owns its own store: the course service never opens the user database and
// vice versa. An in-memory DSN (the default from config) gives a fresh store
// per process.
func Connect(dsn string, entities ...interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if len(entities) > 0 {
		log.Println("Running Migrations...")
		if err := db.AutoMigrate(entities...); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// MustConnect is Connect for main(); it exits the process on failure.
func MustConnect(dsn string, entities ...interface{}) *gorm.DB {
	db, err := Connect(dsn, entities...)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

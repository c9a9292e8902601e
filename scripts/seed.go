package main

import (
	"log"

	"studytracker/config"
	"studytracker/database"
)

// Standalone reset-and-reseed tool. The server only seeds an empty database;
// this wipes existing data first.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Reset(db); err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Setup finished!")
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"studytracker/config"
	"studytracker/database"
	"studytracker/middleware"
	courseRoutes "studytracker/routers/courseRoutes"
	progressRoutes "studytracker/routers/progressRoutes"
	providerRoutes "studytracker/routers/providerRoutes"
	userRoutes "studytracker/routers/userRoutes"
)

// NewApp assembles the fiber application around an injected database handle
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestID())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestId} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	userRoutes.SetupUserRoutes(app, db)
	providerRoutes.SetupProviderRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	progressRoutes.SetupProgressRoutes(app, db)

	return app
}

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	app := NewApp(db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

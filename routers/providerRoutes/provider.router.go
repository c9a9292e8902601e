package providerRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	providerControllers "studytracker/controllers/provider"
	providerValidator "studytracker/validators/provider"
)

// SetupProviderRoutes registers the provider routes
func SetupProviderRoutes(app *fiber.App, db *gorm.DB) {
	providers := app.Group("/providers")

	providers.Get("/", providerControllers.GetAllProviders(db))
	providers.Post("/", providerValidator.CreateProvider(), providerControllers.CreateProvider(db))
	providers.Get("/:id", providerControllers.GetProvider(db))
	providers.Get("/:providerId/courses", providerControllers.GetProviderCourses(db))
}

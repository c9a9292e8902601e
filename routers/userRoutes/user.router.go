package userRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userControllers "studytracker/controllers/user"
	userValidator "studytracker/validators/user"
)

// SetupUserRoutes registers the user routes
func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	users := app.Group("/users")

	users.Get("/", userControllers.GetAllUsers(db))
	users.Post("/", userValidator.CreateUser(), userControllers.CreateUser(db))
	users.Get("/:id", userControllers.GetUser(db))
	users.Get("/:id/details", userControllers.GetUserDetails(db))

	app.Post("/login", userValidator.Login(), userControllers.Login(db))
}

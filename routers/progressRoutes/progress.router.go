package progressRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressControllers "studytracker/controllers/progress"
	progressValidator "studytracker/validators/progress"
)

// SetupProgressRoutes registers the progress aggregation and toggle routes
func SetupProgressRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/users/:userId/courses/:courseId/progress", progressControllers.GetCourseProgress(db))
	app.Patch("/api/progress/toggle", progressValidator.ToggleProgress(), progressControllers.ToggleProgress(db))
}

package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "studytracker/controllers/course"
	courseValidator "studytracker/validators/course"
)

// SetupCourseRoutes registers the course, chapter and lesson routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	courses := app.Group("/courses")

	courses.Get("/", controllers.GetAllCourses(db))
	courses.Post("/", courseValidator.CreateCourse(), controllers.CreateCourse(db))

	// Nested creation: course + provider + chapters + lessons in one transaction
	courses.Post("/full", courseValidator.CreateFullCourse(), controllers.CreateFullCourse(db))

	courses.Get("/:id", controllers.GetCourse(db))
	courses.Get("/:courseId/chapters", controllers.GetCourseChapters(db))

	app.Get("/users/:userId/courses", controllers.GetUserCourses(db))

	app.Post("/chapters", courseValidator.CreateChapter(), controllers.CreateChapter(db))
	app.Get("/chapters/:chapterId/lessons", controllers.GetChapterLessons(db))
	app.Post("/lessons", courseValidator.CreateLesson(), controllers.CreateLesson(db))
}

package progressControllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	progressValidator "studytracker/validators/progress"
)

// ToggleProgress sets a single lesson's completion for a user. The record is
// looked up by its (user, course, chapter, lesson) tuple and updated in
// place when present, so the pair (user, lesson) never gains a second row.
func ToggleProgress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedToggle").(*progressValidator.ToggleProgressRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		var existing models.UserProgress
		err := db.Where(
			"user_id = ? AND course_id = ? AND chapter_id = ? AND lesson_id = ?",
			reqData.UserID, reqData.CourseID, reqData.ChapterID, reqData.LessonID,
		).First(&existing).Error

		if err == nil {
			if err := db.Model(&existing).Update("completed", reqData.Completed).Error; err != nil {
				log.Printf("Failed to update progress %d: %v", existing.ID, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress")
			}
			return c.JSON(fiber.Map{
				"message": "updated",
				"updated": true,
			})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to look up progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress")
		}

		record := models.UserProgress{
			UserID:    reqData.UserID,
			CourseID:  reqData.CourseID,
			ChapterID: reqData.ChapterID,
			LessonID:  reqData.LessonID,
			Completed: reqData.Completed,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Failed to insert progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress")
		}

		return c.JSON(fiber.Map{
			"message": "inserted",
			"updated": false,
		})
	}
}

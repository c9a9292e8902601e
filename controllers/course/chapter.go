package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	courseValidator "studytracker/validators/course"
)

// GetCourseChapters lists the chapters of a course in position order
func GetCourseChapters(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("courseId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
		}

		var chapters []models.Chapter
		if err := db.Where("course_id = ?", courseID).Order("position ASC").Find(&chapters).Error; err != nil {
			log.Printf("Failed to fetch chapters for course %d: %v", courseID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch chapters")
		}
		return c.JSON(chapters)
	}
}

func CreateChapter(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedChapter").(*courseValidator.CreateChapterRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		chapter := models.Chapter{
			CourseID: reqData.CourseID,
			Title:    reqData.Title,
			Position: reqData.Position,
		}
		if err := db.Create(&chapter).Error; err != nil {
			log.Printf("Failed to create chapter: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create chapter")
		}

		return c.Status(fiber.StatusCreated).JSON(chapter)
	}
}

package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	courseValidator "studytracker/validators/course"
)

// GetChapterLessons lists the lessons of a chapter in position order
func GetChapterLessons(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID, err := c.ParamsInt("chapterId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid chapter id")
		}

		var lessons []models.Lesson
		if err := db.Where("chapter_id = ?", chapterID).Order("position ASC").Find(&lessons).Error; err != nil {
			log.Printf("Failed to fetch lessons for chapter %d: %v", chapterID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
		}
		return c.JSON(lessons)
	}
}

func CreateLesson(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		lesson := models.Lesson{
			ChapterID: reqData.ChapterID,
			Title:     reqData.Title,
			Content:   reqData.Content,
			Position:  reqData.Position,
		}
		if err := db.Create(&lesson).Error; err != nil {
			log.Printf("Failed to create lesson: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lesson")
		}

		return c.Status(fiber.StatusCreated).JSON(lesson)
	}
}

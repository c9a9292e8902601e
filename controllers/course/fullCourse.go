package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	courseValidator "studytracker/validators/course"
)

// CreateFullCourse creates a course together with its chapter/lesson tree,
// and optionally a brand-new provider, as one transaction. Any failed insert
// rolls back every row written so far; the caller only ever sees the whole
// course or nothing.
func CreateFullCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedFullCourse").(*courseValidator.FullCourseRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		courseID, providerID, err := insertFullCourse(db, reqData)
		if err != nil {
			log.Printf("Failed to create full course %q: %v", reqData.Title, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":     true,
			"message":     "Course created successfully",
			"course_id":   courseID,
			"provider_id": providerID,
		})
	}
}

// insertFullCourse runs the dependent insert sequence
// provider -> course -> chapters -> lessons inside a single transaction.
// The closure form guarantees rollback on every failure path, panics
// included, and commit only after the last insert succeeds.
func insertFullCourse(db *gorm.DB, req *courseValidator.FullCourseRequest) (uint, *uint, error) {
	var courseID uint
	var providerID *uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.ProviderID != nil {
			providerID = req.ProviderID
		} else if req.Provider != nil && req.Provider.Name != "" {
			provider := models.Provider{
				Name:    req.Provider.Name,
				Website: req.Provider.Website,
			}
			if err := tx.Create(&provider).Error; err != nil {
				return err
			}
			providerID = &provider.ID
		}

		course := models.Course{
			UserID:      req.UserID,
			ProviderID:  providerID,
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		courseID = course.ID

		for chIndex, ch := range req.Chapters {
			title := ch.Title
			if title == "" {
				title = fmt.Sprintf("Chapter %d", chIndex+1)
			}
			chapter := models.Chapter{
				CourseID:    course.ID,
				Title:       title,
				Description: ch.Description,
				Position:    chIndex + 1,
			}
			if err := tx.Create(&chapter).Error; err != nil {
				return err
			}

			for lsIndex, ls := range ch.Lessons {
				lessonTitle := ls.Title
				if lessonTitle == "" {
					lessonTitle = fmt.Sprintf("Lesson %d", lsIndex+1)
				}
				lesson := models.Lesson{
					ChapterID: chapter.ID,
					Title:     lessonTitle,
					Content:   ls.Content,
					Position:  lsIndex + 1,
				}
				if err := tx.Create(&lesson).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return courseID, providerID, nil
}

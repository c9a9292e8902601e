package courseValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studytracker/middleware"
)

// CreateLessonRequest is the payload for adding a lesson to an existing chapter
type CreateLessonRequest struct {
	ChapterID uint   `json:"chapter_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content"`
	Position  int    `json:"position"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "ChapterID":
					errors["chapter_id"] = "Chapter id is required"
				case "Title":
					errors["title"] = "Title is required"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

package progressValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studytracker/middleware"
)

var validate = validator.New()

// ToggleProgressRequest sets one user's completion state for one lesson.
// All four identifying fields are required; the caller supplies the desired
// final value of completed rather than a flip instruction.
type ToggleProgressRequest struct {
	UserID    uint `json:"user_id" validate:"required"`
	CourseID  uint `json:"course_id" validate:"required"`
	ChapterID uint `json:"chapter_id" validate:"required"`
	LessonID  uint `json:"lesson_id" validate:"required"`
	Completed int  `json:"completed" validate:"min=0,max=1"`
}

func ToggleProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ToggleProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields")
		}

		c.Locals("validatedToggle", reqData)
		return c.Next()
	}
}

package courseValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studytracker/middleware"
)

var validate = validator.New()

// CreateCourseRequest is the payload for creating a single course row
type CreateCourseRequest struct {
	UserID      *uint  `json:"user_id"`
	ProviderID  *uint  `json:"provider_id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytracker/middleware"
)

// FullCourseLesson is one lesson inside a nested course payload. Title and
// content are optional; missing titles are defaulted during creation.
type FullCourseLesson struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FullCourseChapter is one chapter inside a nested course payload
type FullCourseChapter struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Lessons     []FullCourseLesson `json:"lessons"`
}

// FullCourseProvider describes a provider to be created together with the
// course when no provider_id is supplied
type FullCourseProvider struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// FullCourseRequest is the nested payload for the all-or-nothing course
// creation endpoint
type FullCourseRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	ImageURL    string              `json:"image_url"`
	UserID      *uint               `json:"user_id"`
	ProviderID  *uint               `json:"provider_id"`
	Provider    *FullCourseProvider `json:"provider"`
	Chapters    []FullCourseChapter `json:"chapters"`
}

// CreateFullCourse rejects a missing title before any transaction is opened
func CreateFullCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FullCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
		}

		c.Locals("validatedFullCourse", reqData)
		return c.Next()
	}
}

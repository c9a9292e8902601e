package providerValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studytracker/middleware"
)

var validate = validator.New()

// CreateProviderRequest is the payload for registering a course provider
type CreateProviderRequest struct {
	Name    string `json:"name" validate:"required"`
	Website string `json:"website"`
}

func CreateProvider() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProviderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Provider name is required")
		}

		c.Locals("validatedProvider", reqData)
		return c.Next()
	}
}

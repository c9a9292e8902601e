package providerControllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	providerValidator "studytracker/validators/provider"
)

func GetAllProviders(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var providers []models.Provider
		if err := db.Find(&providers).Error; err != nil {
			log.Printf("Failed to fetch providers: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch providers")
		}
		return c.JSON(providers)
	}
}

func GetProvider(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid provider id")
		}

		var provider models.Provider
		if err := db.First(&provider, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "Provider not found")
			}
			log.Printf("Failed to fetch provider %d: %v", id, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch provider")
		}
		return c.JSON(provider)
	}
}

// GetProviderCourses lists every course offered by one provider
func GetProviderCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		providerID, err := c.ParamsInt("providerId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid provider id")
		}

		var courses []models.Course
		if err := db.Where("provider_id = ?", providerID).Find(&courses).Error; err != nil {
			log.Printf("Failed to fetch courses for provider %d: %v", providerID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
		return c.JSON(courses)
	}
}

func CreateProvider(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedProvider").(*providerValidator.CreateProviderRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		provider := models.Provider{
			Name:    reqData.Name,
			Website: reqData.Website,
		}
		if err := db.Create(&provider).Error; err != nil {
			log.Printf("Failed to create provider: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create provider")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      provider.ID,
			"name":    provider.Name,
			"website": provider.Website,
			"message": "Provider added successfully",
		})
	}
}

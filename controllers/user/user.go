package userControllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	userValidator "studytracker/validators/user"
)

func GetAllUsers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			log.Printf("Failed to fetch users: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch users")
		}
		return c.JSON(users)
	}
}

func GetUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
			}
			log.Printf("Failed to fetch user %d: %v", id, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user")
		}
		return c.JSON(user)
	}
}

func CreateUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		user := models.User{
			Name:  reqData.Name,
			Email: reqData.Email,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user")
		}

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// Login looks a user up by email. There is no credential check; the tracker
// identifies users by email only.
func Login(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*userValidator.LoginRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		var user models.User
		if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
			}
			log.Printf("Failed to log in %s: %v", reqData.Email, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
		}
		return c.JSON(user)
	}
}

package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	courseValidator "studytracker/validators/course"
)

// CourseWithOwner is a course joined with its owning user's name and email.
// Both are null for orphaned courses.
type CourseWithOwner struct {
	models.Course
	UserName  *string `json:"user_name"`
	UserEmail *string `json:"user_email"`
}

func GetAllCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var courses []models.Course
		if err := db.Find(&courses).Error; err != nil {
			log.Printf("Failed to fetch courses: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
		return c.JSON(courses)
	}
}

// GetUserCourses lists the courses owned by one user
func GetUserCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("userId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
		}

		var courses []models.Course
		if err := db.Where("user_id = ?", userID).Find(&courses).Error; err != nil {
			log.Printf("Failed to fetch courses for user %d: %v", userID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
		return c.JSON(courses)
	}
}

func GetCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
		}

		var course models.Course
		if err := db.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
			}
			log.Printf("Failed to fetch course %d: %v", id, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course")
		}

		result := CourseWithOwner{Course: course}
		if course.UserID != nil {
			var user models.User
			if err := db.First(&user, *course.UserID).Error; err == nil {
				result.UserName = &user.Name
				result.UserEmail = &user.Email
			}
		}
		return c.JSON(result)
	}
}

func CreateCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
		}

		course := models.Course{
			UserID:      reqData.UserID,
			ProviderID:  reqData.ProviderID,
			Title:       reqData.Title,
			Description: reqData.Description,
			ImageURL:    reqData.ImageURL,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Printf("Failed to create course: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course")
		}

		return c.Status(fiber.StatusCreated).JSON(course)
	}
}

package userControllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	"studytracker/utils"
)

// LessonDetail is a lesson with the requesting user's completion flag
// attached. Lessons the user never touched report completed = 0.
type LessonDetail struct {
	models.Lesson
	Completed int `json:"completed"`
}

// ChapterDetail is a chapter with its lessons in position order
type ChapterDetail struct {
	models.Chapter
	Lessons []LessonDetail `json:"lessons"`
}

// ProviderRef is the compact provider shape embedded in a course detail.
// Both fields serialize as null when the course has no provider.
type ProviderRef struct {
	ID   *uint   `json:"id"`
	Name *string `json:"name"`
}

// CourseDetail is a course with its full chapter/lesson tree and the user's
// lesson-weighted completion percentage. Unlike the standalone progress
// endpoint this percentage is total_completed / total_lessons across the
// whole course, so large chapters weigh more. The two formulas are known to
// disagree and are kept distinct on purpose.
type CourseDetail struct {
	models.Course
	ProviderName string          `json:"provider_name"`
	Provider     ProviderRef     `json:"provider"`
	Chapters     []ChapterDetail `json:"chapters"`
	Progress     int             `json:"progress"`
}

// UserDetail is the full user payload with every owned course expanded
type UserDetail struct {
	models.User
	Courses []CourseDetail `json:"courses"`
}

// GetUserDetails returns the user with all owned courses, their ordered
// chapters and lessons, and per-lesson completion flags for that user.
func GetUserDetails(db *gorm.DB) fiber.Handler {
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
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user details")
		}

		var courses []models.Course
		if err := db.Where("user_id = ?", user.ID).Find(&courses).Error; err != nil {
			log.Printf("Failed to fetch courses for user %d: %v", id, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user details")
		}

		details := UserDetail{User: user, Courses: make([]CourseDetail, 0, len(courses))}

		for _, course := range courses {
			detail, err := buildCourseDetail(db, user.ID, course)
			if err != nil {
				log.Printf("Failed to build detail for course %d: %v", course.ID, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user details")
			}
			details.Courses = append(details.Courses, detail)
		}

		return c.JSON(details)
	}
}

func buildCourseDetail(db *gorm.DB, userID uint, course models.Course) (CourseDetail, error) {
	detail := CourseDetail{
		Course:   course,
		Provider: ProviderRef{ID: course.ProviderID},
		Chapters: []ChapterDetail{},
	}

	if course.ProviderID != nil {
		var provider models.Provider
		if err := db.First(&provider, *course.ProviderID).Error; err == nil {
			detail.Provider.Name = &provider.Name
			detail.ProviderName = provider.Name
		}
	}

	var chapters []models.Chapter
	if err := db.Where("course_id = ?", course.ID).Order("position ASC").Find(&chapters).Error; err != nil {
		return detail, err
	}

	totalLessons := 0
	totalCompleted := 0

	for _, chapter := range chapters {
		var lessons []models.Lesson
		if err := db.Where("chapter_id = ?", chapter.ID).Order("position ASC").Find(&lessons).Error; err != nil {
			return detail, err
		}

		var progressRows []models.UserProgress
		if err := db.Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).Find(&progressRows).Error; err != nil {
			return detail, err
		}
		completedByLesson := make(map[uint]int, len(progressRows))
		for _, row := range progressRows {
			completedByLesson[row.LessonID] = row.Completed
		}

		chapterDetail := ChapterDetail{Chapter: chapter, Lessons: make([]LessonDetail, 0, len(lessons))}
		for _, lesson := range lessons {
			completed := completedByLesson[lesson.ID]
			chapterDetail.Lessons = append(chapterDetail.Lessons, LessonDetail{Lesson: lesson, Completed: completed})
			totalLessons++
			if completed == 1 {
				totalCompleted++
			}
		}
		detail.Chapters = append(detail.Chapters, chapterDetail)
	}

	detail.Progress = utils.Percentage(totalCompleted, totalLessons)
	return detail, nil
}

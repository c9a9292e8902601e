package progressControllers

import (
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytracker/middleware"
	"studytracker/models"
	"studytracker/utils"
)

// ChapterProgress is one chapter's completion summary for a user. Totals are
// counted from the user's recorded progress rows, not from the lessons
// table, so untouched lessons do not appear here.
type ChapterProgress struct {
	ChapterID        uint   `json:"chapter_id"`
	ChapterTitle     string `json:"chapter_title"`
	TotalLessons     int    `json:"total_lessons"`
	CompletedLessons int    `json:"completed_lessons"`
	Progress         int    `json:"progress"`
}

// CourseProgress is the standalone per-course progress shape. The course
// percentage is the unweighted mean of the chapter percentages: a 1-lesson
// chapter counts as much as a 100-lesson chapter. The user-detail endpoint
// computes a lesson-weighted percentage instead; the two deliberately stay
// distinct.
type CourseProgress struct {
	CourseID       int               `json:"course_id"`
	CourseProgress int               `json:"course_progress"`
	Chapters       []ChapterProgress `json:"chapters"`
}

// GetCourseProgress computes a user's completion percentages for one course
func GetCourseProgress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("userId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
		}
		courseID, err := c.ParamsInt("courseId")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
		}

		var chapters []models.Chapter
		if err := db.Where("course_id = ?", courseID).Find(&chapters).Error; err != nil {
			log.Printf("Failed to fetch chapters for course %d: %v", courseID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress")
		}

		result := CourseProgress{
			CourseID: courseID,
			Chapters: []ChapterProgress{},
		}
		if len(chapters) == 0 {
			return c.JSON(result)
		}

		sum := 0
		for _, chapter := range chapters {
			var total, completed int64
			if err := db.Model(&models.UserProgress{}).
				Where("user_id = ? AND chapter_id = ?", userID, chapter.ID).
				Count(&total).Error; err != nil {
				log.Printf("Failed to count progress for chapter %d: %v", chapter.ID, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress")
			}
			if err := db.Model(&models.UserProgress{}).
				Where("user_id = ? AND chapter_id = ? AND completed = ?", userID, chapter.ID, 1).
				Count(&completed).Error; err != nil {
				log.Printf("Failed to count completions for chapter %d: %v", chapter.ID, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress")
			}

			percentage := utils.Percentage(int(completed), int(total))
			sum += percentage
			result.Chapters = append(result.Chapters, ChapterProgress{
				ChapterID:        chapter.ID,
				ChapterTitle:     chapter.Title,
				TotalLessons:     int(total),
				CompletedLessons: int(completed),
				Progress:         percentage,
			})
		}

		result.CourseProgress = int(math.Round(float64(sum) / float64(len(result.Chapters))))
		return c.JSON(result)
	}
}

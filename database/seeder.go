package database

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"studytracker/models"
	"studytracker/utils"
)

var courseTitles = []string{
	"JavaScript Basics", "Python Essentials", "React Fundamentals", "Node.js Deep Dive",
	"SQL Mastery", "Data Structures", "Algorithms 101", "Web Security",
	"DevOps Intro", "Cloud Computing", "Machine Learning", "AI Concepts",
	"UI/UX Design", "Docker for Beginners", "Linux Administration",
}

var courseImages = []string{"/images/blue-sky.jpg", "/images/people-on-a-street.jpg"}

// SeedIfEmpty populates the database with example data when the users table
// is empty. Startup is a no-op on an already seeded database.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already contains data, skipping seeding")
		return nil
	}
	log.Println("Database is empty, start seeding...")
	return Seed(db)
}

// Reset removes all rows from every tracker table, children first so the
// foreign keys never block the deletes.
func Reset(db *gorm.DB) error {
	log.Println("Database is being cleaned...")
	tables := []string{"user_progress", "lessons", "chapters", "courses", "providers", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}
	log.Println("Database clean.")
	return nil
}

// Seed inserts example users, providers, courses, chapters, lessons and
// progress rows
func Seed(db *gorm.DB) error {
	log.Println("Seeding started...")

	users := make([]models.User, 20)
	for i := range users {
		users[i] = models.User{
			Name:  fmt.Sprintf("User %d", i+1),
			Email: fmt.Sprintf("user%d@example.com", i+1),
		}
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	providers := []models.Provider{
		{Name: "Zenva", Website: "https://zenva.com"},
		{Name: "Udemy", Website: "https://udemy.com"},
		{Name: "Coursera", Website: "https://coursera.org"},
		{Name: "Codecademy", Website: "https://codecademy.com"},
	}
	if err := db.Create(&providers).Error; err != nil {
		return err
	}

	var courses []models.Course
	for i := range users {
		// The second through fifth users are the heavy users with multiple
		// courses. Selection is by position, not primary key: after a reset
		// the auto-increment keeps counting, so IDs no longer start at 1.
		numCourses := 1
		if i >= 1 && i <= 4 {
			numCourses = utils.RandInt(2, 5)
		}
		for c := 0; c < numCourses; c++ {
			provider := providers[rand.Intn(len(providers))]
			courses = append(courses, models.Course{
				UserID:      &users[i].ID,
				ProviderID:  &provider.ID,
				Title:       courseTitles[rand.Intn(len(courseTitles))],
				Description: utils.Paragraphs(3, 60),
				ImageURL:    courseImages[c%len(courseImages)],
			})
		}
	}
	if err := db.Create(&courses).Error; err != nil {
		return err
	}

	var chapters []models.Chapter
	for i := range courses {
		for ch := 1; ch <= 10; ch++ {
			chapters = append(chapters, models.Chapter{
				CourseID:    courses[i].ID,
				Title:       fmt.Sprintf("Chapter %d - %s", ch, courses[i].Title),
				Description: utils.Paragraphs(1, 80),
				Position:    ch,
			})
		}
	}
	if err := db.Create(&chapters).Error; err != nil {
		return err
	}

	var lessons []models.Lesson
	for i := range chapters {
		numLessons := utils.RandInt(1, 30)
		for l := 1; l <= numLessons; l++ {
			lessons = append(lessons, models.Lesson{
				ChapterID: chapters[i].ID,
				Title:     fmt.Sprintf("Lesson %d of %s", l, chapters[i].Title),
				Content:   utils.Paragraphs(1, 50),
				Position:  l,
			})
		}
	}
	if err := db.Create(&lessons).Error; err != nil {
		return err
	}

	lessonsByChapter := make(map[uint][]models.Lesson)
	for _, lesson := range lessons {
		lessonsByChapter[lesson.ChapterID] = append(lessonsByChapter[lesson.ChapterID], lesson)
	}

	// Only the first 10 users get progress rows. The first user completed
	// the first course entirely; the tenth never touched it; the rest are
	// coin flips.
	var progress []models.UserProgress
	for uIdx := 0; uIdx < 10 && uIdx < len(users); uIdx++ {
		for cIdx := range courses {
			for _, chapter := range chapters {
				if chapter.CourseID != courses[cIdx].ID {
					continue
				}
				for _, lesson := range lessonsByChapter[chapter.ID] {
					completed := 0
					if uIdx == 0 && cIdx == 0 {
						completed = 1
					} else if !(uIdx == 9 && cIdx == 0) && rand.Intn(2) == 1 {
						completed = 1
					}
					progress = append(progress, models.UserProgress{
						UserID:    users[uIdx].ID,
						CourseID:  courses[cIdx].ID,
						ChapterID: chapter.ID,
						LessonID:  lesson.ID,
						Completed: completed,
					})
				}
			}
		}
	}
	if len(progress) > 0 {
		if err := db.CreateInBatches(&progress, 500).Error; err != nil {
			return err
		}
	}

	log.Println("Example data added to database!")
	return nil
}

package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studytracker/database"
	"studytracker/models"
	courseValidator "studytracker/validators/course"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setupApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/courses/full", courseValidator.CreateFullCourse(), CreateFullCourse(db))
	app.Post("/courses", courseValidator.CreateCourse(), CreateCourse(db))
	app.Get("/courses/:id", GetCourse(db))
	app.Get("/courses/:courseId/chapters", GetCourseChapters(db))
	app.Get("/chapters/:chapterId/lessons", GetChapterLessons(db))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

type fullCourseResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CourseID   uint   `json:"course_id"`
	ProviderID *uint  `json:"provider_id"`
}

func TestCreateFullCourseRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body := fiber.Map{
		"title":       "Go from Scratch",
		"description": "A course",
		"provider":    fiber.Map{"name": "Zenva", "website": "https://zenva.com"},
		"chapters": []fiber.Map{
			{"title": "Introduction", "lessons": []fiber.Map{
				{"title": "Hello", "content": "hello world"},
				{"content": "untitled lesson"},
			}},
			{"lessons": []fiber.Map{
				{"title": "Structs"},
			}},
			{"title": "Closing"},
		},
	}

	resp, raw := doJSON(t, app, "POST", "/courses/full", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result fullCourseResponse
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.True(t, result.Success)
	require.NotZero(t, result.CourseID)
	require.NotNil(t, result.ProviderID)

	var provider models.Provider
	require.NoError(t, db.First(&provider, *result.ProviderID).Error)
	assert.Equal(t, "Zenva", provider.Name)

	var chapters []models.Chapter
	require.NoError(t, db.Where("course_id = ?", result.CourseID).Order("position ASC").Find(&chapters).Error)
	require.Len(t, chapters, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{chapters[0].Position, chapters[1].Position, chapters[2].Position})
	assert.Equal(t, "Introduction", chapters[0].Title)
	assert.Equal(t, "Chapter 2", chapters[1].Title)
	assert.Equal(t, "Closing", chapters[2].Title)

	var lessons []models.Lesson
	require.NoError(t, db.Where("chapter_id = ?", chapters[0].ID).Order("position ASC").Find(&lessons).Error)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Hello", lessons[0].Title)
	assert.Equal(t, 1, lessons[0].Position)
	assert.Equal(t, "Lesson 2", lessons[1].Title)
	assert.Equal(t, 2, lessons[1].Position)

	require.NoError(t, db.Where("chapter_id = ?", chapters[2].ID).Find(&lessons).Error)
	assert.Empty(t, lessons)
}

func TestCreateFullCourseExistingProvider(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	provider := models.Provider{Name: "Udemy"}
	require.NoError(t, db.Create(&provider).Error)

	resp, raw := doJSON(t, app, "POST", "/courses/full", fiber.Map{
		"title":       "SQL Mastery",
		"provider_id": provider.ID,
		// provider payload must be ignored when provider_id is given
		"provider": fiber.Map{"name": "ShouldNotExist"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result fullCourseResponse
	require.NoError(t, json.Unmarshal(raw, &result))
	require.NotNil(t, result.ProviderID)
	assert.Equal(t, provider.ID, *result.ProviderID)

	var count int64
	require.NoError(t, db.Model(&models.Provider{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateFullCourseWithoutProvider(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, raw := doJSON(t, app, "POST", "/courses/full", fiber.Map{"title": "Standalone"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result fullCourseResponse
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Nil(t, result.ProviderID)

	var course models.Course
	require.NoError(t, db.First(&course, result.CourseID).Error)
	assert.Nil(t, course.ProviderID)
	assert.Nil(t, course.UserID)
}

func TestCreateFullCourseMissingTitle(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, raw := doJSON(t, app, "POST", "/courses/full", fiber.Map{
		"description": "no title",
		"chapters":    []fiber.Map{{"title": "Orphan"}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "Title is required", result.Error)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

// A failing lesson insert partway through the sequence must leave no course,
// provider, chapter or lesson row behind.
func TestCreateFullCourseRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	require.NoError(t, db.Migrator().DropTable(&models.Lesson{}))

	resp, raw := doJSON(t, app, "POST", "/courses/full", fiber.Map{
		"title":    "Doomed",
		"provider": fiber.Map{"name": "Ghost"},
		"chapters": []fiber.Map{
			{"title": "First", "lessons": []fiber.Map{{"title": "Boom"}}},
		},
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var result struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "Internal server error", result.Error)

	var courses, chapters, providers int64
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.NoError(t, db.Model(&models.Chapter{}).Count(&chapters).Error)
	require.NoError(t, db.Model(&models.Provider{}).Count(&providers).Error)
	assert.Zero(t, courses)
	assert.Zero(t, chapters)
	assert.Zero(t, providers)
}

func TestCreateCourseSingleRow(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, raw := doJSON(t, app, "POST", "/courses", fiber.Map{"title": "Plain"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, json.Unmarshal(raw, &course))
	assert.Equal(t, "Plain", course.Title)
	assert.NotZero(t, course.ID)
}

func TestGetCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, _ := doJSON(t, app, "GET", "/courses/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

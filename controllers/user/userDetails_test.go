package userControllers

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
	userValidator "studytracker/validators/user"
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
	app.Get("/users", GetAllUsers(db))
	app.Post("/users", userValidator.CreateUser(), CreateUser(db))
	app.Get("/users/:id", GetUser(db))
	app.Get("/users/:id/details", GetUserDetails(db))
	app.Post("/login", userValidator.Login(), Login(db))
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

func TestGetUserDetailsNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, raw := doJSON(t, app, "GET", "/users/42/details", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "User not found", result.Error)
}

func TestGetUserDetailsNoCourses(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	user := models.User{Name: "Empty", Email: "empty@example.com"}
	require.NoError(t, db.Create(&user).Error)

	resp, raw := doJSON(t, app, "GET", fmt.Sprintf("/users/%d/details", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result UserDetail
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, user.ID, result.ID)
	assert.NotNil(t, result.Courses)
	assert.Empty(t, result.Courses)
}

// Chapter A has its single lesson completed, chapter B has five untouched
// lessons. The detail progress is lesson-weighted: round(1/6*100) = 17,
// where the standalone endpoint would report 50.
func TestGetUserDetailsWeightedProgress(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	user := models.User{Name: "Learner", Email: "learner@example.com"}
	require.NoError(t, db.Create(&user).Error)
	provider := models.Provider{Name: "Coursera", Website: "https://coursera.org"}
	require.NoError(t, db.Create(&provider).Error)
	course := models.Course{UserID: &user.ID, ProviderID: &provider.ID, Title: "Algorithms 101"}
	require.NoError(t, db.Create(&course).Error)

	// Inserted out of order on purpose; the response must sort by position
	chapterB := models.Chapter{CourseID: course.ID, Title: "B", Position: 2}
	require.NoError(t, db.Create(&chapterB).Error)
	chapterA := models.Chapter{CourseID: course.ID, Title: "A", Position: 1}
	require.NoError(t, db.Create(&chapterA).Error)

	lessonA := models.Lesson{ChapterID: chapterA.ID, Title: "A1", Position: 1}
	require.NoError(t, db.Create(&lessonA).Error)
	for i := 0; i < 5; i++ {
		lesson := models.Lesson{ChapterID: chapterB.ID, Title: fmt.Sprintf("B%d", i+1), Position: i + 1}
		require.NoError(t, db.Create(&lesson).Error)
	}

	record := models.UserProgress{
		UserID:    user.ID,
		CourseID:  course.ID,
		ChapterID: chapterA.ID,
		LessonID:  lessonA.ID,
		Completed: 1,
	}
	require.NoError(t, db.Create(&record).Error)

	resp, raw := doJSON(t, app, "GET", fmt.Sprintf("/users/%d/details", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result UserDetail
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Courses, 1)

	detail := result.Courses[0]
	assert.Equal(t, 17, detail.Progress)
	assert.Equal(t, "Coursera", detail.ProviderName)
	require.NotNil(t, detail.Provider.ID)
	assert.Equal(t, provider.ID, *detail.Provider.ID)
	require.NotNil(t, detail.Provider.Name)
	assert.Equal(t, "Coursera", *detail.Provider.Name)

	require.Len(t, detail.Chapters, 2)
	assert.Equal(t, "A", detail.Chapters[0].Title)
	assert.Equal(t, "B", detail.Chapters[1].Title)

	// Every lesson appears, untouched ones with completed = 0
	require.Len(t, detail.Chapters[0].Lessons, 1)
	assert.Equal(t, 1, detail.Chapters[0].Lessons[0].Completed)
	require.Len(t, detail.Chapters[1].Lessons, 5)
	for _, lesson := range detail.Chapters[1].Lessons {
		assert.Equal(t, 0, lesson.Completed)
	}
}

// A course without a provider reports provider: {id: null, name: null},
// not empty strings.
func TestGetUserDetailsNoProvider(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	user := models.User{Name: "Solo", Email: "solo@example.com"}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{UserID: &user.ID, Title: "Self Study"}
	require.NoError(t, db.Create(&course).Error)

	resp, raw := doJSON(t, app, "GET", fmt.Sprintf("/users/%d/details", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Courses []struct {
			Provider map[string]interface{} `json:"provider"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Courses, 1)
	assert.Nil(t, result.Courses[0].Provider["id"])
	assert.Nil(t, result.Courses[0].Provider["name"])
}

func TestCreateUserAndLogin(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, raw := doJSON(t, app, "POST", "/users", fiber.Map{"name": "New", "email": "new@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.NotZero(t, user.ID)

	resp, raw = doJSON(t, app, "POST", "/login", fiber.Map{"email": "new@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loggedIn models.User
	require.NoError(t, json.Unmarshal(raw, &loggedIn))
	assert.Equal(t, user.ID, loggedIn.ID)

	resp, _ = doJSON(t, app, "POST", "/login", fiber.Map{"email": "unknown@example.com"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/login", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserValidation(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	resp, _ := doJSON(t, app, "POST", "/users", fiber.Map{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

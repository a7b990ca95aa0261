package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytracker/backend/internal/config"
	"github.com/studytracker/backend/internal/handlers"
	"github.com/studytracker/backend/internal/models"
	"github.com/studytracker/backend/internal/repositories"
	"github.com/studytracker/backend/internal/services"
	"go.uber.org/zap"
)

var (
	testDB     *sql.DB
	testRouter chi.Router
	testLogger *zap.Logger
)

// cleanupTestData removes all test data; deleting courses cascades down
func cleanupTestData(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec("DELETE FROM courses")
	require.NoError(t, err, "Failed to cleanup test data")
}

// setupTestRouter creates a test router with all handlers
func setupTestRouter(db *sql.DB, logger *zap.Logger) chi.Router {
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	objectiveRepo := repositories.NewObjectiveRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)

	studySvc := services.NewStudyService(courseRepo, lessonRepo, objectiveRepo, resourceRepo)
	exportSvc := services.NewExportService()

	studyHandler := handlers.NewStudyHandler(studySvc, logger)
	exportHandler := handlers.NewExportHandler(studySvc, exportSvc, logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		studyHandler.RegisterRoutes(r)
		exportHandler.RegisterRoutes(r)
	})

	return r
}

// TestMain sets up and tears down the test environment
func TestMain(m *testing.M) {
	// Initialize logger
	var err error
	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Setup test database
	cfg, err := config.LoadTestConfig()
	if err != nil {
		fmt.Printf("Skipping integration tests: failed to load test config: %v\n", err)
		os.Exit(0)
	}
	dsn := cfg.DSN()
	if cfg.Database.Host == "" {
		// Default test database connection
		dsn = "root:password@tcp(localhost:3306)/studytracker_test?parseTime=true&charset=utf8mb4&clientFoundRows=true"
	}

	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		fmt.Printf("Skipping integration tests: failed to open test database: %v\n", err)
		os.Exit(0)
	}

	// Test connection; without a reachable database these tests cannot run
	if err = testDB.Ping(); err != nil {
		fmt.Printf("Skipping integration tests: failed to ping test database: %v\n", err)
		os.Exit(0)
	}

	// Setup test schema
	setupTestSchemaForMain(testDB)

	// Setup test router
	testRouter = setupTestRouter(testDB, testLogger)

	// Run tests
	code := m.Run()

	// Cleanup
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// setupTestSchemaForMain creates the test database schema (for TestMain)
func setupTestSchemaForMain(db *sql.DB) {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			id CHAR(36) NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			summary TEXT NOT NULL,
			goals JSON NOT NULL,
			goal_answers JSON NOT NULL,
			status ENUM('not_started', 'in_progress', 'completed') NOT NULL DEFAULT 'not_started',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS lessons (
			id CHAR(36) NOT NULL,
			course_id CHAR(36) NOT NULL,
			title VARCHAR(255) NOT NULL,
			summary TEXT NOT NULL,
			project_questions TEXT NOT NULL,
			goals JSON NOT NULL,
			goal_answers JSON NOT NULL,
			status ENUM('not_started', 'in_progress', 'completed') NOT NULL DEFAULT 'not_started',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_test_lessons_course FOREIGN KEY (course_id) REFERENCES courses (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS objectives (
			id CHAR(36) NOT NULL,
			lesson_id CHAR(36) NOT NULL,
			title VARCHAR(255) NOT NULL,
			summary TEXT NOT NULL,
			status ENUM('not_started', 'in_progress', 'completed') NOT NULL DEFAULT 'not_started',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_test_objectives_lesson FOREIGN KEY (lesson_id) REFERENCES lessons (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS resources (
			id CHAR(36) NOT NULL,
			objective_id CHAR(36) NOT NULL,
			description VARCHAR(512) NOT NULL,
			link TEXT NOT NULL,
			summary TEXT NOT NULL,
			status ENUM('not_started', 'in_progress', 'completed') NOT NULL DEFAULT 'not_started',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_test_resources_objective FOREIGN KEY (objective_id) REFERENCES objectives (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, q := range queries {
		db.Exec(q)
	}
}

// doJSON performs a request with a JSON body and decodes the JSON response
func doJSON(t *testing.T, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	testRouter.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}

	return w
}

// getCourse fetches one course through the API
func getCourse(t *testing.T, id string) models.Course {
	t.Helper()
	var course models.Course
	w := doJSON(t, http.MethodGet, "/api/v1/courses/"+id, nil, &course)
	require.Equal(t, http.StatusOK, w.Code)
	return course
}

func TestIntegration_CourseLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	defer cleanupTestData(t, testDB)

	// Create a course with one goal
	var course models.Course
	w := doJSON(t, http.MethodPost, "/api/v1/courses", models.CreateCourseRequest{
		Title:       "Go Fundamentals",
		Description: "Learn the basics",
		Goals:       []models.Goal{{Prompt: "Why learn Go?"}},
	}, &course)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, course.ID)
	assert.Equal(t, models.StatusNotStarted, course.Status)

	// Create a lesson
	var lesson models.Lesson
	w = doJSON(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/lessons", models.CreateLessonRequest{
		Title: "Getting Started",
	}, &lesson)
	require.Equal(t, http.StatusCreated, w.Code)

	// Create an objective
	var objective models.Objective
	w = doJSON(t, http.MethodPost, "/api/v1/lessons/"+lesson.ID+"/objectives", models.CreateObjectiveRequest{
		Title: "Install the toolchain",
	}, &objective)
	require.Equal(t, http.StatusCreated, w.Code)

	// Create two resources
	var first, second models.Resource
	w = doJSON(t, http.MethodPost, "/api/v1/objectives/"+objective.ID+"/resources", models.CreateResourceRequest{
		Description: "Official install guide",
	}, &first)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, http.MethodPost, "/api/v1/objectives/"+objective.ID+"/resources", models.CreateResourceRequest{
		Description: "Tour of Go",
	}, &second)
	require.Equal(t, http.StatusCreated, w.Code)

	// Everything starts untouched
	loaded := getCourse(t, course.ID)
	assert.Equal(t, models.StatusNotStarted, loaded.Status)
	require.Len(t, loaded.Lessons, 1)
	require.Len(t, loaded.Lessons[0].Objectives, 1)
	require.Len(t, loaded.Lessons[0].Objectives[0].Resources, 2)

	// Complete the first resource: everything above moves to in progress
	status := models.StatusCompleted
	w = doJSON(t, http.MethodPatch, "/api/v1/resources/"+first.ID, models.UpdateResourceRequest{Status: &status}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded = getCourse(t, course.ID)
	assert.Equal(t, models.StatusInProgress, loaded.Status)
	assert.Equal(t, models.StatusInProgress, loaded.Lessons[0].Status)
	assert.Equal(t, models.StatusInProgress, loaded.Lessons[0].Objectives[0].Status)

	// Complete the second resource: objective and lesson complete, but the
	// unanswered course goal keeps the course in progress
	w = doJSON(t, http.MethodPatch, "/api/v1/resources/"+second.ID, models.UpdateResourceRequest{Status: &status}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded = getCourse(t, course.ID)
	assert.Equal(t, models.StatusCompleted, loaded.Lessons[0].Objectives[0].Status)
	assert.Equal(t, models.StatusCompleted, loaded.Lessons[0].Status)
	assert.Equal(t, models.StatusInProgress, loaded.Status)

	// Answer the course goal: now the course completes
	w = doJSON(t, http.MethodPut, "/api/v1/courses/"+course.ID+"/answers/0", models.AnswerGoalRequest{
		Answer: "Concurrency and fast builds",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded = getCourse(t, course.ID)
	assert.Equal(t, models.StatusCompleted, loaded.Status)
	assert.Equal(t, "Concurrency and fast builds", loaded.Goals[0].Answer)

	// Stats reflect the finished tree
	var stats models.CourseStats
	w = doJSON(t, http.MethodGet, "/api/v1/courses/"+course.ID+"/stats", nil, &stats)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stats.CompletedLessons)
	assert.Equal(t, 2, stats.CompletedResources)
	assert.Equal(t, 100, stats.ProgressPercent)

	// Delete the course
	w = doJSON(t, http.MethodDelete, "/api/v1/courses/"+course.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, http.MethodGet, "/api/v1/courses/"+course.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_DeleteRecomputesAncestors(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	defer cleanupTestData(t, testDB)

	var course models.Course
	w := doJSON(t, http.MethodPost, "/api/v1/courses", models.CreateCourseRequest{Title: "Cleanup"}, &course)
	require.Equal(t, http.StatusCreated, w.Code)

	var lesson models.Lesson
	w = doJSON(t, http.MethodPost, "/api/v1/courses/"+course.ID+"/lessons", models.CreateLessonRequest{Title: "Only"}, &lesson)
	require.Equal(t, http.StatusCreated, w.Code)

	var objective models.Objective
	w = doJSON(t, http.MethodPost, "/api/v1/lessons/"+lesson.ID+"/objectives", models.CreateObjectiveRequest{Title: "Only"}, &objective)
	require.Equal(t, http.StatusCreated, w.Code)

	var resource models.Resource
	w = doJSON(t, http.MethodPost, "/api/v1/objectives/"+objective.ID+"/resources", models.CreateResourceRequest{
		Description: "The one resource",
		Status:      models.StatusCompleted,
	}, &resource)
	require.Equal(t, http.StatusCreated, w.Code)

	loaded := getCourse(t, course.ID)
	assert.Equal(t, models.StatusCompleted, loaded.Status)

	// Removing the only completed resource empties the objective, dropping
	// the whole chain back to not started
	w = doJSON(t, http.MethodDelete, "/api/v1/resources/"+resource.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded = getCourse(t, course.ID)
	assert.Equal(t, models.StatusNotStarted, loaded.Status)
	assert.Equal(t, models.StatusNotStarted, loaded.Lessons[0].Status)
	assert.Equal(t, models.StatusNotStarted, loaded.Lessons[0].Objectives[0].Status)
}

func TestIntegration_GoalAnswerValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	defer cleanupTestData(t, testDB)

	var course models.Course
	w := doJSON(t, http.MethodPost, "/api/v1/courses", models.CreateCourseRequest{
		Title: "Goals",
		Goals: []models.Goal{{Prompt: "only one"}},
	}, &course)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, http.MethodPut, "/api/v1/courses/"+course.ID+"/answers/5", models.AnswerGoalRequest{Answer: "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, http.MethodPut, "/api/v1/courses/"+course.ID+"/answers/abc", models.AnswerGoalRequest{Answer: "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegration_ExportCourse(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	defer cleanupTestData(t, testDB)

	var course models.Course
	w := doJSON(t, http.MethodPost, "/api/v1/courses", models.CreateCourseRequest{
		Title:   "Exportable",
		Summary: "A course worth keeping",
	}, &course)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/courses/"+course.ID+"?format=md", nil)
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "# Exportable")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/export/courses/"+course.ID+"?format=pdf", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

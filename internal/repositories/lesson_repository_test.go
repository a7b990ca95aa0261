package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytracker/backend/internal/models"
)

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

var lessonRowColumns = []string{"id", "course_id", "title", "summary", "project_questions", "goals", "goal_answers", "status", "created_at", "updated_at"}

func TestLessonRepository_GetByCourseID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow("l1", "c1", "Lesson 1", "", "", `["goal"]`, `["ans"]`, "completed", now, now).
					AddRow("l2", "c1", "Lesson 2", "", "", `[]`, `[]`, "not_started", now, now)
				mock.ExpectQuery(`SELECT.*FROM lessons.*WHERE course_id = \?.*ORDER BY created_at ASC`).
					WithArgs("c1").
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "no lessons",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM lessons.*WHERE course_id = \?`).
					WithArgs("c1").
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM lessons.*WHERE course_id = \?`).
					WithArgs("c1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByCourseID(context.Background(), "c1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow("l1", "c1", "Lesson 1", "sum", "questions", `["goal"]`, `[""]`, "in_progress", now, now)
				mock.ExpectQuery(`SELECT.*FROM lessons.*WHERE id = \?`).
					WithArgs("l1").
					WillReturnRows(rows)
			},
		},
		{
			name: "lesson not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM lessons.*WHERE id = \?`).
					WithArgs("l1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "lesson not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), "l1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "c1", result.CourseID)
				assert.Equal(t, []models.Goal{{Prompt: "goal"}}, result.Goals)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO lessons`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	lesson := &models.Lesson{
		ID:        "l1",
		CourseID:  "c1",
		Title:     "Lesson 1",
		Goals:     []models.Goal{{Prompt: "goal"}},
		Status:    models.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.Create(context.Background(), lesson)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Update(t *testing.T) {
	title := "Renamed"
	goals := []models.Goal{{Prompt: "goal", Answer: "done"}}

	tests := []struct {
		name          string
		req           *models.UpdateLessonRequest
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "update title",
			req:  &models.UpdateLessonRequest{Title: &title},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons.*SET title = \?, updated_at = \?.*WHERE id = \?`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "update goals writes both columns",
			req:  &models.UpdateLessonRequest{Goals: &goals},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons.*SET goals = \?, goal_answers = \?, updated_at = \?.*WHERE id = \?`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:          "no fields",
			req:           &models.UpdateLessonRequest{},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedError: true,
			errorContains: "no fields to update",
		},
		{
			name: "lesson not found",
			req:  &models.UpdateLessonRequest{Title: &title},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			errorContains: "lesson not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Update(context.Background(), "l1", tt.req, time.Now())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_UpdateStatus(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE lessons.*SET status = \?, updated_at = \?.*WHERE id = \?`).
		WithArgs(models.StatusInProgress, sqlmock.AnyArg(), "l1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "l1", models.StatusInProgress, time.Now())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs("l1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "lesson not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs("l1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			errorContains: "lesson not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), "l1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/studytracker/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

const lessonColumns = "id, course_id, title, summary, project_questions, goals, goal_answers, status, created_at, updated_at"

// scanLesson reads one lesson row, pairing the goal/answer JSON columns
func scanLesson(scanner interface{ Scan(dest ...any) error }) (*models.Lesson, error) {
	var lesson models.Lesson
	var goalsRaw, answersRaw []byte

	err := scanner.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Summary,
		&lesson.ProjectQuestions,
		&goalsRaw,
		&answersRaw,
		&lesson.Status,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	prompts, err := unmarshalStringList(goalsRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lesson goals: %w", err)
	}
	answers, err := unmarshalStringList(answersRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lesson goal answers: %w", err)
	}
	lesson.Goals = models.PairGoals(prompts, answers)

	return &lesson, nil
}

// queryLessons runs a lesson query and scans all rows
func (r *lessonRepository) queryLessons(ctx context.Context, query string, args ...any) ([]models.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetAll retrieves all lessons, oldest first
func (r *lessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons
		ORDER BY created_at ASC
	`, lessonColumns)

	return r.queryLessons(ctx, query)
}

// GetByCourseID retrieves the lessons of a course, oldest first
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID string) ([]models.Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons
		WHERE course_id = ?
		ORDER BY created_at ASC
	`, lessonColumns)

	return r.queryLessons(ctx, query, courseID)
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`, lessonColumns)

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return lesson, nil
}

// Create creates a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	prompts, answers := models.SplitGoals(lesson.Goals)
	goalsRaw, err := marshalStringList(prompts)
	if err != nil {
		return err
	}
	answersRaw, err := marshalStringList(answers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lessons (id, course_id, title, summary, project_questions, goals, goal_answers, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		lesson.ID,
		lesson.CourseID,
		lesson.Title,
		lesson.Summary,
		lesson.ProjectQuestions,
		goalsRaw,
		answersRaw,
		lesson.Status,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	return nil
}

// Update updates a lesson (partial update)
func (r *lessonRepository) Update(ctx context.Context, id string, req *models.UpdateLessonRequest, updatedAt time.Time) error {
	var setParts []string
	var args []any

	if req.Title != nil {
		setParts = append(setParts, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Summary != nil {
		setParts = append(setParts, "summary = ?")
		args = append(args, *req.Summary)
	}
	if req.ProjectQuestions != nil {
		setParts = append(setParts, "project_questions = ?")
		args = append(args, *req.ProjectQuestions)
	}
	if req.Goals != nil {
		prompts, answers := models.SplitGoals(*req.Goals)
		goalsRaw, err := marshalStringList(prompts)
		if err != nil {
			return err
		}
		answersRaw, err := marshalStringList(answers)
		if err != nil {
			return err
		}
		setParts = append(setParts, "goals = ?", "goal_answers = ?")
		args = append(args, goalsRaw, answersRaw)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setParts = append(setParts, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := fmt.Sprintf(`
		UPDATE lessons
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// UpdateStatus persists a recomputed lesson status
func (r *lessonRepository) UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error {
	query := `
		UPDATE lessons
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// Delete deletes a lesson by ID, cascading to its objectives
func (r *lessonRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM lessons WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

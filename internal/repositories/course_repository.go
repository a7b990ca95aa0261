package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/studytracker/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// scanCourse reads one course row, pairing the goal/answer JSON columns
func scanCourse(scanner interface{ Scan(dest ...any) error }) (*models.Course, error) {
	var course models.Course
	var goalsRaw, answersRaw []byte

	err := scanner.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Summary,
		&goalsRaw,
		&answersRaw,
		&course.Status,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	prompts, err := unmarshalStringList(goalsRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode course goals: %w", err)
	}
	answers, err := unmarshalStringList(answersRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode course goal answers: %w", err)
	}
	course.Goals = models.PairGoals(prompts, answers)

	return &course, nil
}

// GetAll retrieves all courses, most recently created first
func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, title, description, summary, goals, goal_answers, status, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, description, summary, goals, goal_answers, status, created_at, updated_at
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// Create creates a new course
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	prompts, answers := models.SplitGoals(course.Goals)
	goalsRaw, err := marshalStringList(prompts)
	if err != nil {
		return err
	}
	answersRaw, err := marshalStringList(answers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO courses (id, title, description, summary, goals, goal_answers, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Summary,
		goalsRaw,
		answersRaw,
		course.Status,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// Update updates a course (partial update)
func (r *courseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest, updatedAt time.Time) error {
	var setParts []string
	var args []any

	if req.Title != nil {
		setParts = append(setParts, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Summary != nil {
		setParts = append(setParts, "summary = ?")
		args = append(args, *req.Summary)
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
		UPDATE courses
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("course not found")
	}

	return nil
}

// UpdateStatus persists a recomputed course status
func (r *courseRepository) UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error {
	query := `
		UPDATE courses
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update course status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("course not found")
	}

	return nil
}

// Delete deletes a course by ID, cascading to its lessons
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM courses WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("course not found")
	}

	return nil
}

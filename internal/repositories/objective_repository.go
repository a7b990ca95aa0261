package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/studytracker/backend/internal/models"
)

type objectiveRepository struct {
	db *sql.DB
}

// NewObjectiveRepository creates a new objective repository
func NewObjectiveRepository(db *sql.DB) *objectiveRepository {
	return &objectiveRepository{
		db: db,
	}
}

const objectiveColumns = "id, lesson_id, title, summary, status, created_at, updated_at"

func scanObjective(scanner interface{ Scan(dest ...any) error }) (*models.Objective, error) {
	var objective models.Objective
	err := scanner.Scan(
		&objective.ID,
		&objective.LessonID,
		&objective.Title,
		&objective.Summary,
		&objective.Status,
		&objective.CreatedAt,
		&objective.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

func (r *objectiveRepository) queryObjectives(ctx context.Context, query string, args ...any) ([]models.Objective, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query objectives: %w", err)
	}
	defer rows.Close()

	var objectives []models.Objective
	for rows.Next() {
		objective, err := scanObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan objective: %w", err)
		}
		objectives = append(objectives, *objective)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return objectives, nil
}

// GetAll retrieves all objectives, oldest first
func (r *objectiveRepository) GetAll(ctx context.Context) ([]models.Objective, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM objectives
		ORDER BY created_at ASC
	`, objectiveColumns)

	return r.queryObjectives(ctx, query)
}

// GetByLessonID retrieves the objectives of a lesson, oldest first
func (r *objectiveRepository) GetByLessonID(ctx context.Context, lessonID string) ([]models.Objective, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM objectives
		WHERE lesson_id = ?
		ORDER BY created_at ASC
	`, objectiveColumns)

	return r.queryObjectives(ctx, query, lessonID)
}

// GetByID retrieves an objective by its ID
func (r *objectiveRepository) GetByID(ctx context.Context, id string) (*models.Objective, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM objectives
		WHERE id = ?
		LIMIT 1
	`, objectiveColumns)

	objective, err := scanObjective(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("objective not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get objective by id: %w", err)
	}

	return objective, nil
}

// Create creates a new objective
func (r *objectiveRepository) Create(ctx context.Context, objective *models.Objective) error {
	query := `
		INSERT INTO objectives (id, lesson_id, title, summary, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		objective.ID,
		objective.LessonID,
		objective.Title,
		objective.Summary,
		objective.Status,
		objective.CreatedAt,
		objective.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create objective: %w", err)
	}

	return nil
}

// Update updates an objective (partial update)
func (r *objectiveRepository) Update(ctx context.Context, id string, req *models.UpdateObjectiveRequest, updatedAt time.Time) error {
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

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setParts = append(setParts, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := fmt.Sprintf(`
		UPDATE objectives
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update objective: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("objective not found")
	}

	return nil
}

// UpdateStatus persists a recomputed objective status
func (r *objectiveRepository) UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error {
	query := `
		UPDATE objectives
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update objective status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("objective not found")
	}

	return nil
}

// Delete deletes an objective by ID, cascading to its resources
func (r *objectiveRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM objectives WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete objective: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("objective not found")
	}

	return nil
}

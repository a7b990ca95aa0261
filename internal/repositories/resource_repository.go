package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/studytracker/backend/internal/models"
)

type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

const resourceColumns = "id, objective_id, description, link, summary, status, created_at, updated_at"

func scanResource(scanner interface{ Scan(dest ...any) error }) (*models.Resource, error) {
	var resource models.Resource
	err := scanner.Scan(
		&resource.ID,
		&resource.ObjectiveID,
		&resource.Description,
		&resource.Link,
		&resource.Summary,
		&resource.Status,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) queryResources(ctx context.Context, query string, args ...any) ([]models.Resource, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, *resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return resources, nil
}

// GetAll retrieves all resources, oldest first
func (r *resourceRepository) GetAll(ctx context.Context) ([]models.Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM resources
		ORDER BY created_at ASC
	`, resourceColumns)

	return r.queryResources(ctx, query)
}

// GetByObjectiveID retrieves the resources of an objective, oldest first
func (r *resourceRepository) GetByObjectiveID(ctx context.Context, objectiveID string) ([]models.Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM resources
		WHERE objective_id = ?
		ORDER BY created_at ASC
	`, resourceColumns)

	return r.queryResources(ctx, query, objectiveID)
}

// GetByID retrieves a resource by its ID
func (r *resourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM resources
		WHERE id = ?
		LIMIT 1
	`, resourceColumns)

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("resource not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource by id: %w", err)
	}

	return resource, nil
}

// Create creates a new resource
func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (id, objective_id, description, link, summary, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		resource.ID,
		resource.ObjectiveID,
		resource.Description,
		resource.Link,
		resource.Summary,
		resource.Status,
		resource.CreatedAt,
		resource.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

// Update updates a resource (partial update)
func (r *resourceRepository) Update(ctx context.Context, id string, req *models.UpdateResourceRequest, updatedAt time.Time) error {
	var setParts []string
	var args []any

	if req.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Link != nil {
		setParts = append(setParts, "link = ?")
		args = append(args, *req.Link)
	}
	if req.Summary != nil {
		setParts = append(setParts, "summary = ?")
		args = append(args, *req.Summary)
	}
	if req.Status != nil {
		setParts = append(setParts, "status = ?")
		args = append(args, *req.Status)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setParts = append(setParts, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := fmt.Sprintf(`
		UPDATE resources
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource not found")
	}

	return nil
}

// Delete deletes a resource by ID
func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM resources WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource not found")
	}

	return nil
}

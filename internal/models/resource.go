package models

import "time"

// Resource represents a study resource attached to an objective.
// Resource status is the only status a user sets directly; every
// parent status is derived from its children.
type Resource struct {
	ID          string         `json:"id"`
	ObjectiveID string         `json:"objectiveId,omitempty"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	Summary     string         `json:"summary"`
	Status      ProgressStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CreateResourceRequest represents a request to create a resource
type CreateResourceRequest struct {
	Description string         `json:"description"`
	Link        string         `json:"link"`
	Summary     string         `json:"summary"`
	Status      ProgressStatus `json:"status,omitempty"`
}

// UpdateResourceRequest represents a request to update a resource (partial update)
type UpdateResourceRequest struct {
	Description *string         `json:"description,omitempty"`
	Link        *string         `json:"link,omitempty"`
	Summary     *string         `json:"summary,omitempty"`
	Status      *ProgressStatus `json:"status,omitempty"`
}

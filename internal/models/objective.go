package models

import "time"

// Objective represents a learning objective within a lesson
type Objective struct {
	ID        string         `json:"id"`
	LessonID  string         `json:"lessonId,omitempty"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	Resources []Resource     `json:"resources"`
	Status    ProgressStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CreateObjectiveRequest represents a request to create an objective
type CreateObjectiveRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// UpdateObjectiveRequest represents a request to update an objective (partial update)
type UpdateObjectiveRequest struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

package models

import "time"

// Lesson represents a lesson in a course
type Lesson struct {
	ID               string         `json:"id"`
	CourseID         string         `json:"courseId,omitempty"`
	Title            string         `json:"title"`
	Summary          string         `json:"summary"`
	ProjectQuestions string         `json:"projectQuestions"`
	Goals            []Goal         `json:"goals"`
	Objectives       []Objective    `json:"objectives"`
	Status           ProgressStatus `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	ProjectQuestions string `json:"projectQuestions"`
	Goals            []Goal `json:"goals"`
}

// UpdateLessonRequest represents a request to update a lesson (partial update)
type UpdateLessonRequest struct {
	Title            *string `json:"title,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	ProjectQuestions *string `json:"projectQuestions,omitempty"`
	Goals            *[]Goal `json:"goals,omitempty"`
}

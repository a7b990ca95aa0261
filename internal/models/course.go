package models

import "time"

// Course represents a course in the study tracker
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Summary     string         `json:"summary"`
	Goals       []Goal         `json:"goals"`
	Lessons     []Lesson       `json:"lessons"`
	Status      ProgressStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Goals       []Goal `json:"goals"`
}

// UpdateCourseRequest represents a request to update a course (partial update)
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	Goals       *[]Goal `json:"goals,omitempty"`
}

// CourseStats holds the roll-up progress counts for a course
type CourseStats struct {
	TotalLessons        int `json:"totalLessons"`
	CompletedLessons    int `json:"completedLessons"`
	TotalObjectives     int `json:"totalObjectives"`
	CompletedObjectives int `json:"completedObjectives"`
	TotalResources      int `json:"totalResources"`
	CompletedResources  int `json:"completedResources"`
	TotalGoals          int `json:"totalGoals"`
	CompletedGoals      int `json:"completedGoals"`
	ProgressPercent     int `json:"progressPercent"`
}

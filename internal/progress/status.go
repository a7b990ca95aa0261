// Package progress computes derived completion statuses and roll-up
// statistics for the course hierarchy. All functions are pure: they take a
// snapshot of the tree and return a value, leaving persistence to callers.
package progress

import "github.com/studytracker/backend/internal/models"

// ObjectiveStatus derives an objective's status from its resources.
// An objective with no resources is not started; all resources completed
// makes it completed; any resource started makes it in progress.
func ObjectiveStatus(resources []models.Resource) models.ProgressStatus {
	if len(resources) == 0 {
		return models.StatusNotStarted
	}

	completed := 0
	started := 0
	for _, r := range resources {
		switch r.Status {
		case models.StatusCompleted:
			completed++
			started++
		case models.StatusInProgress:
			started++
		}
	}

	if completed == len(resources) {
		return models.StatusCompleted
	}
	if started > 0 {
		return models.StatusInProgress
	}
	return models.StatusNotStarted
}

// ParentStatus derives a lesson's or course's status from its children's
// statuses and its own goal answers. The two levels share one rule: the
// parent is completed when every goal is answered and every child is
// completed, in progress when anything has been started, and not started
// otherwise. A parent with no goals and no children is not started, never
// vacuously completed.
func ParentStatus(childStatuses []models.ProgressStatus, goals []models.Goal) models.ProgressStatus {
	totalGoals := len(goals)
	completedGoals := models.CountCompletedGoals(goals)

	totalChildren := len(childStatuses)
	completedChildren := 0
	inProgressChildren := 0
	for _, s := range childStatuses {
		switch s {
		case models.StatusCompleted:
			completedChildren++
		case models.StatusInProgress:
			inProgressChildren++
		}
	}

	allGoalsComplete := totalGoals == 0 || completedGoals == totalGoals
	allChildrenComplete := totalChildren == 0 || completedChildren == totalChildren

	if allGoalsComplete && allChildrenComplete && (totalGoals > 0 || totalChildren > 0) {
		return models.StatusCompleted
	}
	if completedGoals > 0 || completedChildren > 0 || inProgressChildren > 0 {
		return models.StatusInProgress
	}
	return models.StatusNotStarted
}

// LessonStatus derives a lesson's status from its objectives and goals
func LessonStatus(lesson *models.Lesson) models.ProgressStatus {
	statuses := make([]models.ProgressStatus, len(lesson.Objectives))
	for i, o := range lesson.Objectives {
		statuses[i] = o.Status
	}
	return ParentStatus(statuses, lesson.Goals)
}

// CourseStatus derives a course's status from its lessons and goals
func CourseStatus(course *models.Course) models.ProgressStatus {
	statuses := make([]models.ProgressStatus, len(course.Lessons))
	for i, l := range course.Lessons {
		statuses[i] = l.Status
	}
	return ParentStatus(statuses, course.Goals)
}

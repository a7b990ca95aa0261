package progress

import (
	"math"

	"github.com/studytracker/backend/internal/models"
)

// CourseStats walks a course subtree once and returns its roll-up counts.
// Resources are the sole denominator for the headline percentage; goals and
// objectives only contribute to their own ratios. Safe to call per render,
// never cached.
func CourseStats(course *models.Course) models.CourseStats {
	stats := models.CourseStats{
		TotalLessons:   len(course.Lessons),
		TotalGoals:     len(course.Goals),
		CompletedGoals: models.CountCompletedGoals(course.Goals),
	}

	for _, lesson := range course.Lessons {
		if lesson.Status == models.StatusCompleted {
			stats.CompletedLessons++
		}
		stats.TotalGoals += len(lesson.Goals)
		stats.CompletedGoals += models.CountCompletedGoals(lesson.Goals)
		stats.TotalObjectives += len(lesson.Objectives)

		for _, objective := range lesson.Objectives {
			if objective.Status == models.StatusCompleted {
				stats.CompletedObjectives++
			}
			stats.TotalResources += len(objective.Resources)
			for _, resource := range objective.Resources {
				if resource.Status == models.StatusCompleted {
					stats.CompletedResources++
				}
			}
		}
	}

	if stats.TotalResources > 0 {
		stats.ProgressPercent = int(math.Round(float64(stats.CompletedResources) / float64(stats.TotalResources) * 100))
	}

	return stats
}

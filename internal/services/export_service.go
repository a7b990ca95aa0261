package services

import (
	"fmt"
	"strings"

	"github.com/studytracker/backend/internal/models"
)

// ExportFormat selects the output format for study-material exports
type ExportFormat string

const (
	FormatText     ExportFormat = "txt"
	FormatMarkdown ExportFormat = "md"
)

// Valid reports whether the format is supported
func (f ExportFormat) Valid() bool {
	return f == FormatText || f == FormatMarkdown
}

// ContentType returns the MIME type for the format
func (f ExportFormat) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown"
	}
	return "text/plain"
}

type exportService struct{}

// NewExportService creates a new export service
func NewExportService() *exportService {
	return &exportService{}
}

// CourseSummary renders a course and its full subtree as a text or Markdown
// document. Read-only formatting over the loaded tree; no core state.
func (s *exportService) CourseSummary(course *models.Course, format ExportFormat) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	var b strings.Builder
	if format == FormatMarkdown {
		fmt.Fprintf(&b, "# %s\n\n", course.Title)
		if course.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", course.Description)
		}
		if course.Summary != "" {
			fmt.Fprintf(&b, "## Course Summary\n\n%s\n\n", course.Summary)
		}
		for _, lesson := range course.Lessons {
			writeLessonMarkdown(&b, &lesson, "##")
		}
		return b.String(), nil
	}

	writeHeading(&b, course.Title, "=")
	if course.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", course.Description)
	}
	if course.Summary != "" {
		writeSection(&b, "COURSE SUMMARY", course.Summary)
	}
	for _, lesson := range course.Lessons {
		writeLessonText(&b, &lesson)
	}
	return b.String(), nil
}

// LessonSummary renders one lesson with its objectives and resource summaries
func (s *exportService) LessonSummary(lesson *models.Lesson, format ExportFormat) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	var b strings.Builder
	if format == FormatMarkdown {
		writeLessonMarkdown(&b, lesson, "#")
		return b.String(), nil
	}
	writeLessonText(&b, lesson)
	return b.String(), nil
}

func writeLessonMarkdown(b *strings.Builder, lesson *models.Lesson, level string) {
	fmt.Fprintf(b, "%s %s\n\n", level, lesson.Title)
	if lesson.Summary != "" {
		fmt.Fprintf(b, "%s# Lesson Summary\n\n%s\n\n", level, lesson.Summary)
	}
	if lesson.ProjectQuestions != "" {
		fmt.Fprintf(b, "%s# Project Questions\n\n%s\n\n", level, lesson.ProjectQuestions)
	}
	if len(lesson.Objectives) > 0 {
		fmt.Fprintf(b, "%s# Objectives\n\n", level)
		for _, objective := range lesson.Objectives {
			fmt.Fprintf(b, "%s## %s\n\n", level, objective.Title)
			for _, resource := range objective.Resources {
				if resource.Summary == "" {
					continue
				}
				fmt.Fprintf(b, "%s### %s\n\n%s\n\n", level, resource.Description, resource.Summary)
			}
		}
	}
}

func writeLessonText(b *strings.Builder, lesson *models.Lesson) {
	writeHeading(b, lesson.Title, "=")
	if lesson.Summary != "" {
		writeSection(b, "LESSON SUMMARY", lesson.Summary)
	}
	if lesson.ProjectQuestions != "" {
		writeSection(b, "PROJECT QUESTIONS", lesson.ProjectQuestions)
	}
	if len(lesson.Objectives) > 0 {
		fmt.Fprintf(b, "OBJECTIVES\n%s\n\n", strings.Repeat("-", len("OBJECTIVES")))
		for _, objective := range lesson.Objectives {
			fmt.Fprintf(b, "%s\n", objective.Title)
			for _, resource := range objective.Resources {
				if resource.Summary == "" {
					continue
				}
				fmt.Fprintf(b, "  - %s\n    %s\n\n", resource.Description, resource.Summary)
			}
		}
	}
}

func writeHeading(b *strings.Builder, title, underline string) {
	fmt.Fprintf(b, "%s\n%s\n\n", title, strings.Repeat(underline, len(title)))
}

func writeSection(b *strings.Builder, name, body string) {
	fmt.Fprintf(b, "%s\n%s\n%s\n\n", name, strings.Repeat("-", len(name)), body)
}

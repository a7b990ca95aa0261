package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studytracker/backend/internal/models"
	"github.com/studytracker/backend/internal/services"
	"go.uber.org/zap"
)

// CourseReader loads courses and lessons with their full subtrees
type CourseReader interface {
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	GetLesson(ctx context.Context, lessonID string) (*models.Lesson, error)
}

// Exporter renders study material as downloadable documents
type Exporter interface {
	CourseSummary(course *models.Course, format services.ExportFormat) (string, error)
	LessonSummary(lesson *models.Lesson, format services.ExportFormat) (string, error)
}

// ExportHandler handles study-material download requests
type ExportHandler struct {
	BaseHandler
	reader   CourseReader
	exporter Exporter
}

// NewExportHandler creates a new export handler
func NewExportHandler(reader CourseReader, exporter Exporter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		reader:      reader,
		exporter:    exporter,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the export routes
func (h *ExportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/export", func(r chi.Router) {
		r.Get("/courses/{id}", h.ExportCourse)
		r.Get("/lessons/{id}", h.ExportLesson)
	})
}

// exportFormat reads the format query parameter, defaulting to txt
func exportFormat(r *http.Request) services.ExportFormat {
	format := services.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = services.FormatText
	}
	return format
}

// ExportCourse handles GET /export/courses/{id}
// @Summary Export a course
// @Description Download a course with all its study material as a text or Markdown document
// @Tags export
// @Produce plain
// @Param id path string true "Course ID"
// @Param format query string false "Export format" Enums(txt, md) default(txt)
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /export/courses/{id} [get]
func (h *ExportHandler) ExportCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := exportFormat(r)

	course, err := h.reader.GetCourse(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get course for export", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	doc, err := h.exporter.CourseSummary(course, format)
	if err != nil {
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondDocument(w, fmt.Sprintf("%s.%s", course.Title, format), format.ContentType(), doc)
}

// ExportLesson handles GET /export/lessons/{id}
// @Summary Export a lesson
// @Description Download one lesson with its objectives and resource summaries
// @Tags export
// @Produce plain
// @Param id path string true "Lesson ID"
// @Param format query string false "Export format" Enums(txt, md) default(txt)
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /export/lessons/{id} [get]
func (h *ExportHandler) ExportLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := exportFormat(r)

	lesson, err := h.reader.GetLesson(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get lesson for export", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	doc, err := h.exporter.LessonSummary(lesson, format)
	if err != nil {
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondDocument(w, fmt.Sprintf("%s.%s", lesson.Title, format), format.ContentType(), doc)
}

func (h *ExportHandler) respondDocument(w http.ResponseWriter, filename, contentType, doc string) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		h.logger.Error("failed to write export document", zap.Error(err))
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studytracker/backend/internal/models"
	"go.uber.org/zap"
)

// StudyService is the interface that wraps the course tree operations.
// Every mutation persists the change, recomputes derived ancestor statuses
// bottom-up, and persists those too before returning.
type StudyService interface {
	// LoadCourses reconstructs the full nested course tree from the store
	LoadCourses(ctx context.Context) ([]models.Course, error)
	// GetCourse retrieves one course with its full subtree
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	// GetCourseStats computes the roll-up progress counts for a course
	GetCourseStats(ctx context.Context, courseID string) (*models.CourseStats, error)
	// CreateCourse creates a new course
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// UpdateCourse applies a partial update to a course
	UpdateCourse(ctx context.Context, courseID string, req *models.UpdateCourseRequest) error
	// DeleteCourse deletes a course and all its descendants
	DeleteCourse(ctx context.Context, courseID string) error
	// SetCourseGoalAnswer stores the answer to one course goal by index
	SetCourseGoalAnswer(ctx context.Context, courseID string, index int, answer string) error
	// CreateLesson creates a new lesson in a course
	CreateLesson(ctx context.Context, courseID string, req *models.CreateLessonRequest) (*models.Lesson, error)
	// UpdateLesson applies a partial update to a lesson
	UpdateLesson(ctx context.Context, lessonID string, req *models.UpdateLessonRequest) error
	// DeleteLesson deletes a lesson and its descendants
	DeleteLesson(ctx context.Context, lessonID string) error
	// SetLessonGoalAnswer stores the answer to one lesson goal by index
	SetLessonGoalAnswer(ctx context.Context, lessonID string, index int, answer string) error
	// CreateObjective creates a new objective in a lesson
	CreateObjective(ctx context.Context, lessonID string, req *models.CreateObjectiveRequest) (*models.Objective, error)
	// UpdateObjective applies a partial update to an objective
	UpdateObjective(ctx context.Context, objectiveID string, req *models.UpdateObjectiveRequest) error
	// DeleteObjective deletes an objective and its resources
	DeleteObjective(ctx context.Context, objectiveID string) error
	// CreateResource creates a new resource in an objective
	CreateResource(ctx context.Context, objectiveID string, req *models.CreateResourceRequest) (*models.Resource, error)
	// UpdateResource applies a partial update to a resource
	UpdateResource(ctx context.Context, resourceID string, req *models.UpdateResourceRequest) error
	// DeleteResource deletes a resource
	DeleteResource(ctx context.Context, resourceID string) error
}

// StudyHandler handles HTTP requests for the course tree
type StudyHandler struct {
	BaseHandler
	service StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(svc StudyService, logger *zap.Logger) *StudyHandler {
	return &StudyHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all study handler routes
func (h *StudyHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.GetCourses)
		r.Post("/", h.CreateCourse)
		r.Get("/{id}", h.GetCourse)
		r.Patch("/{id}", h.UpdateCourse)
		r.Delete("/{id}", h.DeleteCourse)
		r.Get("/{id}/stats", h.GetCourseStats)
		r.Put("/{id}/answers/{index}", h.SetCourseGoalAnswer)
		r.Post("/{id}/lessons", h.CreateLesson)
	})
	r.Route("/lessons", func(r chi.Router) {
		r.Patch("/{id}", h.UpdateLesson)
		r.Delete("/{id}", h.DeleteLesson)
		r.Put("/{id}/answers/{index}", h.SetLessonGoalAnswer)
		r.Post("/{id}/objectives", h.CreateObjective)
	})
	r.Route("/objectives", func(r chi.Router) {
		r.Patch("/{id}", h.UpdateObjective)
		r.Delete("/{id}", h.DeleteObjective)
		r.Post("/{id}/resources", h.CreateResource)
	})
	r.Route("/resources", func(r chi.Router) {
		r.Patch("/{id}", h.UpdateResource)
		r.Delete("/{id}", h.DeleteResource)
	})
}

// GetCourses handles GET /courses
// @Summary Get the full course tree
// @Description Get all courses with nested lessons, objectives and resources
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func (h *StudyHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.LoadCourses(r.Context())
	if err != nil {
		h.logger.Error("failed to load courses", zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	if courses == nil {
		courses = []models.Course{}
	}
	h.respondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{id}
// @Summary Get one course
// @Description Get a course with its full subtree
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id} [get]
func (h *StudyHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get course", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// GetCourseStats handles GET /courses/{id}/stats
// @Summary Get course statistics
// @Description Get roll-up completion counts and overall percent for a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.CourseStats
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id}/stats [get]
func (h *StudyHandler) GetCourseStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stats, err := h.service.GetCourseStats(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get course stats", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// CreateCourse handles POST /courses
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.CreateCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [post]
func (h *StudyHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create course", zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, course)
}

// UpdateCourse handles PATCH /courses/{id}
// @Summary Update a course
// @Description Apply a partial update to a course; its status is recomputed
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param course body models.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id} [patch]
func (h *StudyHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateCourse(r.Context(), id, &req); err != nil {
		h.logger.Error("failed to update course", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "course updated"})
}

// DeleteCourse handles DELETE /courses/{id}
// @Summary Delete a course
// @Description Delete a course and all its lessons, objectives and resources
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id} [delete]
func (h *StudyHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		h.logger.Error("failed to delete course", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "course deleted"})
}

// SetCourseGoalAnswer handles PUT /courses/{id}/answers/{index}
// @Summary Answer a course goal
// @Description Store the answer to one course goal; course status is recomputed
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param index path int true "Goal index"
// @Param answer body models.AnswerGoalRequest true "Answer text"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id}/answers/{index} [put]
func (h *StudyHandler) SetCourseGoalAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid goal index")
		return
	}

	var req models.AnswerGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetCourseGoalAnswer(r.Context(), id, index, req.Answer); err != nil {
		h.logger.Error("failed to set course goal answer", zap.String("id", id), zap.Int("index", index), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "answer saved"})
}

// CreateLesson handles POST /courses/{id}/lessons
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param lesson body models.CreateLessonRequest true "Lesson data"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id}/lessons [post]
func (h *StudyHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), courseID, &req)
	if err != nil {
		h.logger.Error("failed to create lesson", zap.String("courseId", courseID), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// UpdateLesson handles PATCH /lessons/{id}
// @Summary Update a lesson
// @Description Apply a partial update to a lesson; lesson and course statuses are recomputed
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param lesson body models.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /lessons/{id} [patch]
func (h *StudyHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateLesson(r.Context(), id, &req); err != nil {
		h.logger.Error("failed to update lesson", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "lesson updated"})
}

// DeleteLesson handles DELETE /lessons/{id}
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /lessons/{id} [delete]
func (h *StudyHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteLesson(r.Context(), id); err != nil {
		h.logger.Error("failed to delete lesson", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "lesson deleted"})
}

// SetLessonGoalAnswer handles PUT /lessons/{id}/answers/{index}
// @Summary Answer a lesson goal
// @Description Store the answer to one lesson goal; lesson and course statuses are recomputed
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param index path int true "Goal index"
// @Param answer body models.AnswerGoalRequest true "Answer text"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /lessons/{id}/answers/{index} [put]
func (h *StudyHandler) SetLessonGoalAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid goal index")
		return
	}

	var req models.AnswerGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetLessonGoalAnswer(r.Context(), id, index, req.Answer); err != nil {
		h.logger.Error("failed to set lesson goal answer", zap.String("id", id), zap.Int("index", index), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "answer saved"})
}

// CreateObjective handles POST /lessons/{id}/objectives
// @Summary Create an objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param objective body models.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} models.Objective
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /lessons/{id}/objectives [post]
func (h *StudyHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "id")

	var req models.CreateObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	objective, err := h.service.CreateObjective(r.Context(), lessonID, &req)
	if err != nil {
		h.logger.Error("failed to create objective", zap.String("lessonId", lessonID), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, objective)
}

// UpdateObjective handles PATCH /objectives/{id}
// @Summary Update an objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID"
// @Param objective body models.UpdateObjectiveRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /objectives/{id} [patch]
func (h *StudyHandler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateObjective(r.Context(), id, &req); err != nil {
		h.logger.Error("failed to update objective", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "objective updated"})
}

// DeleteObjective handles DELETE /objectives/{id}
// @Summary Delete an objective
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /objectives/{id} [delete]
func (h *StudyHandler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteObjective(r.Context(), id); err != nil {
		h.logger.Error("failed to delete objective", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "objective deleted"})
}

// CreateResource handles POST /objectives/{id}/resources
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Objective ID"
// @Param resource body models.CreateResourceRequest true "Resource data"
// @Success 201 {object} models.Resource
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /objectives/{id}/resources [post]
func (h *StudyHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	objectiveID := chi.URLParam(r, "id")

	var req models.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resource, err := h.service.CreateResource(r.Context(), objectiveID, &req)
	if err != nil {
		h.logger.Error("failed to create resource", zap.String("objectiveId", objectiveID), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, resource)
}

// UpdateResource handles PATCH /resources/{id}
// @Summary Update a resource
// @Description Apply a partial update to a resource. An explicit status value is authoritative for the resource; ancestor statuses are recomputed from it.
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body models.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resources/{id} [patch]
func (h *StudyHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateResource(r.Context(), id, &req); err != nil {
		h.logger.Error("failed to update resource", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "resource updated"})
}

// DeleteResource handles DELETE /resources/{id}
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *StudyHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteResource(r.Context(), id); err != nil {
		h.logger.Error("failed to delete resource", zap.String("id", id), zap.Error(err))
		h.respondError(w, errorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "resource deleted"})
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studytracker/backend/internal/models"
	"github.com/studytracker/backend/internal/progress"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetAll retrieves all courses, most recently created first
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// Create creates a new course
	Create(ctx context.Context, course *models.Course) error
	// Update applies a partial update to a course
	Update(ctx context.Context, id string, req *models.UpdateCourseRequest, updatedAt time.Time) error
	// UpdateStatus persists a recomputed course status
	UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error
	// Delete deletes a course by ID, cascading to descendants
	Delete(ctx context.Context, id string) error
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetAll retrieves all lessons, oldest first
	GetAll(ctx context.Context) ([]models.Lesson, error)
	// GetByCourseID retrieves the lessons of a course, oldest first
	GetByCourseID(ctx context.Context, courseID string) ([]models.Lesson, error)
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// Create creates a new lesson
	Create(ctx context.Context, lesson *models.Lesson) error
	// Update applies a partial update to a lesson
	Update(ctx context.Context, id string, req *models.UpdateLessonRequest, updatedAt time.Time) error
	// UpdateStatus persists a recomputed lesson status
	UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error
	// Delete deletes a lesson by ID, cascading to descendants
	Delete(ctx context.Context, id string) error
}

// ObjectiveRepository defines methods for objective data access
type ObjectiveRepository interface {
	// GetAll retrieves all objectives, oldest first
	GetAll(ctx context.Context) ([]models.Objective, error)
	// GetByLessonID retrieves the objectives of a lesson, oldest first
	GetByLessonID(ctx context.Context, lessonID string) ([]models.Objective, error)
	// GetByID retrieves an objective by ID
	GetByID(ctx context.Context, id string) (*models.Objective, error)
	// Create creates a new objective
	Create(ctx context.Context, objective *models.Objective) error
	// Update applies a partial update to an objective
	Update(ctx context.Context, id string, req *models.UpdateObjectiveRequest, updatedAt time.Time) error
	// UpdateStatus persists a recomputed objective status
	UpdateStatus(ctx context.Context, id string, status models.ProgressStatus, updatedAt time.Time) error
	// Delete deletes an objective by ID, cascading to its resources
	Delete(ctx context.Context, id string) error
}

// ResourceRepository defines methods for resource data access
type ResourceRepository interface {
	// GetAll retrieves all resources, oldest first
	GetAll(ctx context.Context) ([]models.Resource, error)
	// GetByObjectiveID retrieves the resources of an objective, oldest first
	GetByObjectiveID(ctx context.Context, objectiveID string) ([]models.Resource, error)
	// GetByID retrieves a resource by ID
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	// Create creates a new resource
	Create(ctx context.Context, resource *models.Resource) error
	// Update applies a partial update to a resource
	Update(ctx context.Context, id string, req *models.UpdateResourceRequest, updatedAt time.Time) error
	// Delete deletes a resource by ID
	Delete(ctx context.Context, id string) error
}

type studyService struct {
	courseRepo    CourseRepository
	lessonRepo    LessonRepository
	objectiveRepo ObjectiveRepository
	resourceRepo  ResourceRepository
	now           func() time.Time
}

// NewStudyService creates a new study service
func NewStudyService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	objectiveRepo ObjectiveRepository,
	resourceRepo ResourceRepository,
) *studyService {
	return &studyService{
		courseRepo:    courseRepo,
		lessonRepo:    lessonRepo,
		objectiveRepo: objectiveRepo,
		resourceRepo:  resourceRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// LoadCourses reconstructs the full nested course tree from the four flat
// tables. Lesson and course statuses are recomputed while grouping, which
// corrects any drift from out-of-band edits. Children whose parent row no
// longer exists are silently dropped.
func (s *studyService) LoadCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}

	lessons, err := s.lessonRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}

	objectives, err := s.objectiveRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load objectives: %w", err)
	}

	resources, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	return buildTree(courses, lessons, objectives, resources), nil
}

// buildTree groups children under their parents bottom-up
func buildTree(courses []models.Course, lessons []models.Lesson, objectives []models.Objective, resources []models.Resource) []models.Course {
	resourcesByObjective := make(map[string][]models.Resource)
	for _, resource := range resources {
		resourcesByObjective[resource.ObjectiveID] = append(resourcesByObjective[resource.ObjectiveID], resource)
	}

	objectivesByLesson := make(map[string][]models.Objective)
	for _, objective := range objectives {
		objective.Resources = resourcesByObjective[objective.ID]
		objectivesByLesson[objective.LessonID] = append(objectivesByLesson[objective.LessonID], objective)
	}

	lessonsByCourse := make(map[string][]models.Lesson)
	for _, lesson := range lessons {
		lesson.Objectives = objectivesByLesson[lesson.ID]
		lesson.Status = progress.LessonStatus(&lesson)
		lessonsByCourse[lesson.CourseID] = append(lessonsByCourse[lesson.CourseID], lesson)
	}

	tree := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		course.Lessons = lessonsByCourse[course.ID]
		course.Status = progress.CourseStatus(&course)
		tree = append(tree, course)
	}

	return tree
}

// GetCourse retrieves one course with its full subtree
func (s *studyService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	tree, err := s.LoadCourses(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tree {
		if tree[i].ID == courseID {
			return &tree[i], nil
		}
	}

	return nil, fmt.Errorf("course not found")
}

// GetLesson retrieves one lesson with its full subtree
func (s *studyService) GetLesson(ctx context.Context, lessonID string) (*models.Lesson, error) {
	tree, err := s.LoadCourses(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tree {
		for j := range tree[i].Lessons {
			if tree[i].Lessons[j].ID == lessonID {
				return &tree[i].Lessons[j], nil
			}
		}
	}

	return nil, fmt.Errorf("lesson not found")
}

// GetCourseStats computes the roll-up progress counts for a course
func (s *studyService) GetCourseStats(ctx context.Context, courseID string) (*models.CourseStats, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	stats := progress.CourseStats(course)
	return &stats, nil
}

// CreateCourse creates a new course
func (s *studyService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := s.now()
	course := &models.Course{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Summary:     req.Summary,
		Goals:       req.Goals,
		Status:      progress.ParentStatus(nil, req.Goals),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// UpdateCourse applies a partial update to a course, then recomputes its
// status. Course status is always derived; it cannot be patched directly.
func (s *studyService) UpdateCourse(ctx context.Context, courseID string, req *models.UpdateCourseRequest) error {
	if err := s.courseRepo.Update(ctx, courseID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return s.refreshCourseStatus(ctx, courseID)
}

// DeleteCourse deletes a course and all its descendants
func (s *studyService) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// SetCourseGoalAnswer stores the answer to one course goal and recomputes
// the course status
func (s *studyService) SetCourseGoalAnswer(ctx context.Context, courseID string, index int, answer string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}

	goals, err := models.SetGoalAnswer(course.Goals, index, answer)
	if err != nil {
		return err
	}

	req := &models.UpdateCourseRequest{Goals: &goals}
	if err := s.courseRepo.Update(ctx, courseID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update course goals: %w", err)
	}

	return s.refreshCourseStatus(ctx, courseID)
}

// CreateLesson creates a new lesson in a course
func (s *studyService) CreateLesson(ctx context.Context, courseID string, req *models.CreateLessonRequest) (*models.Lesson, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	now := s.now()
	lesson := &models.Lesson{
		ID:               uuid.New().String(),
		CourseID:         courseID,
		Title:            req.Title,
		Summary:          req.Summary,
		ProjectQuestions: req.ProjectQuestions,
		Goals:            req.Goals,
		Status:           progress.ParentStatus(nil, req.Goals),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	if err := s.refreshCourseStatus(ctx, courseID); err != nil {
		return nil, err
	}

	return lesson, nil
}

// UpdateLesson applies a partial update to a lesson, then recomputes the
// lesson and course statuses
func (s *studyService) UpdateLesson(ctx context.Context, lessonID string, req *models.UpdateLessonRequest) error {
	if err := s.lessonRepo.Update(ctx, lessonID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	return s.propagateFromLesson(ctx, lessonID)
}

// DeleteLesson deletes a lesson and its descendants, then recomputes the
// course status
func (s *studyService) DeleteLesson(ctx context.Context, lessonID string) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get lesson: %w", err)
	}

	if err := s.lessonRepo.Delete(ctx, lessonID); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	return s.refreshCourseStatus(ctx, lesson.CourseID)
}

// SetLessonGoalAnswer stores the answer to one lesson goal and recomputes
// the lesson and course statuses
func (s *studyService) SetLessonGoalAnswer(ctx context.Context, lessonID string, index int, answer string) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get lesson: %w", err)
	}

	goals, err := models.SetGoalAnswer(lesson.Goals, index, answer)
	if err != nil {
		return err
	}

	req := &models.UpdateLessonRequest{Goals: &goals}
	if err := s.lessonRepo.Update(ctx, lessonID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update lesson goals: %w", err)
	}

	return s.propagateFromLesson(ctx, lessonID)
}

// CreateObjective creates a new objective in a lesson
func (s *studyService) CreateObjective(ctx context.Context, lessonID string, req *models.CreateObjectiveRequest) (*models.Objective, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	now := s.now()
	objective := &models.Objective{
		ID:        uuid.New().String(),
		LessonID:  lessonID,
		Title:     req.Title,
		Summary:   req.Summary,
		Status:    models.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.objectiveRepo.Create(ctx, objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}

	if err := s.propagateFromLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	return objective, nil
}

// UpdateObjective applies a partial update to an objective. Objective status
// is always derived from resources, so the patch carries no status field.
func (s *studyService) UpdateObjective(ctx context.Context, objectiveID string, req *models.UpdateObjectiveRequest) error {
	objective, err := s.objectiveRepo.GetByID(ctx, objectiveID)
	if err != nil {
		return fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.objectiveRepo.Update(ctx, objectiveID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update objective: %w", err)
	}

	return s.propagateFromLesson(ctx, objective.LessonID)
}

// DeleteObjective deletes an objective and its resources, then recomputes
// the lesson and course statuses
func (s *studyService) DeleteObjective(ctx context.Context, objectiveID string) error {
	objective, err := s.objectiveRepo.GetByID(ctx, objectiveID)
	if err != nil {
		return fmt.Errorf("failed to get objective: %w", err)
	}

	if err := s.objectiveRepo.Delete(ctx, objectiveID); err != nil {
		return fmt.Errorf("failed to delete objective: %w", err)
	}

	return s.propagateFromLesson(ctx, objective.LessonID)
}

// CreateResource creates a new resource in an objective
func (s *studyService) CreateResource(ctx context.Context, objectiveID string, req *models.CreateResourceRequest) (*models.Resource, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	if _, err := s.objectiveRepo.GetByID(ctx, objectiveID); err != nil {
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}

	now := s.now()
	resource := &models.Resource{
		ID:          uuid.New().String(),
		ObjectiveID: objectiveID,
		Description: req.Description,
		Link:        req.Link,
		Summary:     req.Summary,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if err := s.propagateFromObjective(ctx, objectiveID); err != nil {
		return nil, err
	}

	return resource, nil
}

// UpdateResource applies a partial update to a resource. An explicit status
// in the patch is authoritative for the resource itself; ancestors are
// recomputed from it.
func (s *studyService) UpdateResource(ctx context.Context, resourceID string, req *models.UpdateResourceRequest) error {
	if req.Status != nil && !req.Status.Valid() {
		return fmt.Errorf("invalid status %q", *req.Status)
	}

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("failed to get resource: %w", err)
	}

	if err := s.resourceRepo.Update(ctx, resourceID, req, s.now()); err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}

	return s.propagateFromObjective(ctx, resource.ObjectiveID)
}

// DeleteResource deletes a resource, then recomputes its ancestors' statuses
func (s *studyService) DeleteResource(ctx context.Context, resourceID string) error {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("failed to get resource: %w", err)
	}

	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	return s.propagateFromObjective(ctx, resource.ObjectiveID)
}

// propagateFromObjective recomputes derived statuses bottom-up starting at
// an objective: objective, then its lesson, then the course. Every mutation
// entry point funnels through here or propagateFromLesson, so the order is
// never skipped. The first persistence failure aborts the rest of the chain;
// the next mutation to the same subtree recomputes from fresh children.
func (s *studyService) propagateFromObjective(ctx context.Context, objectiveID string) error {
	lessonID, err := s.refreshObjectiveStatus(ctx, objectiveID)
	if err != nil {
		return err
	}
	return s.propagateFromLesson(ctx, lessonID)
}

// propagateFromLesson recomputes the lesson status and then the course status
func (s *studyService) propagateFromLesson(ctx context.Context, lessonID string) error {
	courseID, err := s.refreshLessonStatus(ctx, lessonID)
	if err != nil {
		return err
	}
	return s.refreshCourseStatus(ctx, courseID)
}

// refreshObjectiveStatus recomputes one objective's status from its current
// resources and persists it. Returns the owning lesson's ID.
func (s *studyService) refreshObjectiveStatus(ctx context.Context, objectiveID string) (string, error) {
	objective, err := s.objectiveRepo.GetByID(ctx, objectiveID)
	if err != nil {
		return "", fmt.Errorf("failed to get objective: %w", err)
	}

	resources, err := s.resourceRepo.GetByObjectiveID(ctx, objectiveID)
	if err != nil {
		return "", fmt.Errorf("failed to get resources: %w", err)
	}

	status := progress.ObjectiveStatus(resources)
	if err := s.objectiveRepo.UpdateStatus(ctx, objectiveID, status, s.now()); err != nil {
		return "", fmt.Errorf("failed to persist objective status: %w", err)
	}

	return objective.LessonID, nil
}

// refreshLessonStatus recomputes one lesson's status from its current
// objectives and goal answers and persists it. Returns the owning course's ID.
func (s *studyService) refreshLessonStatus(ctx context.Context, lessonID string) (string, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return "", fmt.Errorf("failed to get lesson: %w", err)
	}

	objectives, err := s.objectiveRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return "", fmt.Errorf("failed to get objectives: %w", err)
	}

	lesson.Objectives = objectives
	status := progress.LessonStatus(lesson)
	if err := s.lessonRepo.UpdateStatus(ctx, lessonID, status, s.now()); err != nil {
		return "", fmt.Errorf("failed to persist lesson status: %w", err)
	}

	return lesson.CourseID, nil
}

// refreshCourseStatus recomputes one course's status from its current
// lessons and goal answers and persists it
func (s *studyService) refreshCourseStatus(ctx context.Context, courseID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get lessons: %w", err)
	}

	course.Lessons = lessons
	status := progress.CourseStatus(course)
	if err := s.courseRepo.UpdateStatus(ctx, courseID, status, s.now()); err != nil {
		return fmt.Errorf("failed to persist course status: %w", err)
	}

	return nil
}

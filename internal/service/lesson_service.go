package service

import (
	"errors"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

type AddLessonInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// Order is optional; when nil the lesson is appended after the current
	// highest order (0 for the first lesson).
	Order *int `json:"order"`
}

type UpdateLessonInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   *int   `json:"order"`
}

// LessonService manages lessons inside a course. Lesson writes are restricted
// to the owning educator; admins get no override here, unlike course writes.
type LessonService struct {
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
}

func NewLessonService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository) *LessonService {
	return &LessonService{
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
	}
}

// Add creates a lesson in the course. The default order is computed and the
// row inserted inside one transaction, so concurrent adds cannot collide.
func (s *LessonService) Add(actorID, courseID uint, in AddLessonInput) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	if course.EducatorID != actorID {
		return nil, util.ErrForbidden
	}

	if err := validateLesson(in.Title, in.Content, in.Order); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		Title:    in.Title,
		Content:  in.Content,
		CourseID: courseID,
	}
	err = s.LessonRepo.DB.Transaction(func(tx *gorm.DB) error {
		if in.Order != nil {
			lesson.Order = *in.Order
		} else {
			current, err := s.LessonRepo.MaxOrder(tx, courseID)
			if err != nil {
				return err
			}
			lesson.Order = current + 1
		}
		return tx.Create(lesson).Error
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Update(actorID, courseID, lessonID uint, in UpdateLessonInput) (*model.Lesson, error) {
	lesson, err := s.findOwned(actorID, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	if err := validateLesson(in.Title, in.Content, in.Order); err != nil {
		return nil, err
	}

	lesson.Title = in.Title
	lesson.Content = in.Content
	if in.Order != nil {
		lesson.Order = *in.Order
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Delete removes the lesson. Remaining lessons keep their order values; gaps
// are allowed.
func (s *LessonService) Delete(actorID, courseID, lessonID uint) error {
	lesson, err := s.findOwned(actorID, courseID, lessonID)
	if err != nil {
		return err
	}
	return s.LessonRepo.Delete(lesson.ID)
}

// List returns the course's lessons in display order. Public.
func (s *LessonService) List(courseID uint) ([]model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.LessonRepo.ListByCourse(courseID)
}

// findOwned resolves a lesson for mutation. A lesson that exists under a
// different course is reported as not found, never leaked.
func (s *LessonService) findOwned(actorID, courseID, lessonID uint) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	if course.EducatorID != actorID {
		return nil, util.ErrForbidden
	}

	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	} else if err != nil {
		return nil, err
	}
	if lesson.CourseID != courseID {
		return nil, util.ErrLessonNotFound
	}
	return lesson, nil
}

func validateLesson(title, content string, order *int) error {
	if len(title) < 3 {
		return util.InvalidArgument("Title must be at least 3 characters")
	}
	if len(title) > 100 {
		return util.InvalidArgument("Title must be at most 100 characters")
	}
	if len(content) < 10 {
		return util.InvalidArgument("Content must be at least 10 characters")
	}
	if order != nil && *order < 0 {
		return util.InvalidArgument("Order must be zero or greater")
	}
	return nil
}

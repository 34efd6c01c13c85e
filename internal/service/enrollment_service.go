package service

import (
	"errors"
	"time"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

// EnrollmentCourse is the course projection attached to an enrollment view.
type EnrollmentCourse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	EducatorName string `json:"educatorName"`
	LessonCount  int64  `json:"lessonCount"`
}

type EnrollmentView struct {
	ID         uint             `json:"id"`
	Progress   int              `json:"progress"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Course     EnrollmentCourse `json:"course"`
}

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll enrolls a student into a published course at progress 0. A missing
// course and an unpublished one produce the same not-found error, so draft
// courses stay invisible. The unique (student, course) index is the final
// word on duplicates; the FindByPair check only gives the common case a
// clearer path.
func (s *EnrollmentService) Enroll(studentID uint, role model.UserRole, courseID uint) (*model.Enrollment, error) {
	if role != model.RoleStudent {
		return nil, util.ErrForbidden
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	if course.Status != model.StatusPublished {
		return nil, util.ErrCourseNotFound
	}

	if _, err := s.EnrollmentRepo.FindByPair(studentID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Progress:   0,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

// UpdateProgress sets the student's progress on their own enrollment.
// Progress may move in either direction; a student can rewatch from zero.
// Someone else's enrollment is reported as not found, not forbidden.
func (s *EnrollmentService) UpdateProgress(studentID, enrollmentID uint, progress int) (*model.Enrollment, error) {
	enrollment, err := s.findOwn(studentID, enrollmentID)
	if err != nil {
		return nil, err
	}

	if progress < 0 || progress > 100 {
		return nil, util.InvalidArgument("Progress must be between 0 and 100")
	}

	enrollment.Progress = progress
	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Unenroll(studentID, enrollmentID uint) error {
	enrollment, err := s.findOwn(studentID, enrollmentID)
	if err != nil {
		return err
	}
	return s.EnrollmentRepo.Delete(enrollment.ID)
}

// ListForStudent returns the caller's enrollments newest first, with the
// course, its educator's name and a lesson count for the learning dashboard.
func (s *EnrollmentService) ListForStudent(studentID uint) ([]EnrollmentView, error) {
	enrollments, err := s.EnrollmentRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.CourseID)
	}
	lessonCounts, err := s.CourseRepo.LessonCounts(courseIDs)
	if err != nil {
		return nil, err
	}

	views := make([]EnrollmentView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		view := EnrollmentView{
			ID:         enrollment.ID,
			Progress:   enrollment.Progress,
			EnrolledAt: enrollment.EnrolledAt,
		}
		if enrollment.Course != nil {
			view.Course = EnrollmentCourse{
				ID:          enrollment.Course.ID,
				Title:       enrollment.Course.Title,
				Category:    enrollment.Course.Category,
				Thumbnail:   enrollment.Course.Thumbnail,
				LessonCount: lessonCounts[enrollment.CourseID],
			}
			if enrollment.Course.Educator != nil {
				view.Course.EducatorName = enrollment.Course.Educator.Name
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *EnrollmentService) findOwn(studentID, enrollmentID uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	} else if err != nil {
		return nil, err
	}
	if enrollment.StudentID != studentID {
		return nil, util.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

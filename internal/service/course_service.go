package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"time"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

type CreateCourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	Status      string `json:"status"`
}

// UpdateCourseInput uses pointers so absent fields are left unchanged.
type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Thumbnail   *string `json:"thumbnail"`
	Status      *string `json:"status"`
}

type CourseDetail struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Thumbnail       string             `json:"thumbnail,omitempty"`
	Status          model.CourseStatus `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	Educator        EducatorInfo       `json:"educator"`
	Lessons         []model.Lesson     `json:"lessons"`
	EnrollmentCount int64              `json:"enrollmentCount"`
}

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Catalog        *CatalogService
	Storage        *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, catalog *CatalogService, storage *StorageService) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Catalog:        catalog,
		Storage:        storage,
	}
}

func (s *CourseService) Create(educatorID uint, in CreateCourseInput) (*model.Course, error) {
	if err := validateCourseTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateCourseDescription(in.Description); err != nil {
		return nil, err
	}
	if in.Category == "" {
		return nil, util.InvalidArgument("Category is required")
	}
	if err := validateThumbnail(in.Thumbnail); err != nil {
		return nil, err
	}
	status, err := parseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Thumbnail:   in.Thumbnail,
		Status:      status,
		EducatorID:  educatorID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.Catalog.Invalidate()
	return course, nil
}

// Update applies a partial update. Owner or admin; other educators get 403.
func (s *CourseService) Update(actorID uint, role model.UserRole, courseID uint, in UpdateCourseInput) (*model.Course, error) {
	course, err := s.findWritable(actorID, role, courseID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validateCourseTitle(*in.Title); err != nil {
			return nil, err
		}
		course.Title = *in.Title
	}
	if in.Description != nil {
		if err := validateCourseDescription(*in.Description); err != nil {
			return nil, err
		}
		course.Description = *in.Description
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, util.InvalidArgument("Category is required")
		}
		course.Category = *in.Category
	}
	if in.Thumbnail != nil {
		if err := validateThumbnail(*in.Thumbnail); err != nil {
			return nil, err
		}
		course.Thumbnail = *in.Thumbnail
	}
	if in.Status != nil {
		status, err := parseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		course.Status = status
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.Catalog.Invalidate()
	return course, nil
}

// Delete removes the course and cascades to its lessons and enrollments.
func (s *CourseService) Delete(actorID uint, role model.UserRole, courseID uint) error {
	if _, err := s.findWritable(actorID, role, courseID); err != nil {
		return err
	}
	if err := s.CourseRepo.DeleteCascade(courseID); err != nil {
		return err
	}

	s.Catalog.Invalidate()
	return nil
}

func (s *CourseService) Detail(courseID uint) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindDetail(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	enrollmentCount, err := s.EnrollmentRepo.CountByCourse(courseID)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Category:        course.Category,
		Thumbnail:       course.Thumbnail,
		Status:          course.Status,
		CreatedAt:       course.CreatedAt,
		Lessons:         course.Lessons,
		EnrollmentCount: enrollmentCount,
	}
	if course.Educator != nil {
		detail.Educator = EducatorInfo{
			ID:    course.Educator.ID,
			Name:  course.Educator.Name,
			Image: course.Educator.Image,
		}
	}
	return detail, nil
}

// UploadThumbnail stores the image and records its URL on the course. The
// existence and ownership checks run before anything hits the storage
// provider, so a rejected request leaves no orphan object behind.
func (s *CourseService) UploadThumbnail(ctx context.Context, actorID uint, role model.UserRole, courseID uint, file *multipart.FileHeader) (string, error) {
	course, err := s.findWritable(actorID, role, courseID)
	if err != nil {
		return "", err
	}

	thumbnailURL, object, err := s.Storage.UploadThumbnail(ctx, courseID, file)
	if err != nil {
		return "", err
	}

	course.Thumbnail = thumbnailURL
	if err := s.CourseRepo.Update(course); err != nil {
		if removeErr := s.Storage.Remove(ctx, object); removeErr != nil {
			return "", errors.Join(err, removeErr)
		}
		return "", err
	}

	s.Catalog.Invalidate()
	return thumbnailURL, nil
}

func (s *CourseService) findWritable(actorID uint, role model.UserRole, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if !util.CanWrite(actorID, role, course.EducatorID) {
		return nil, util.ErrForbidden
	}
	return course, nil
}

func validateCourseTitle(title string) error {
	if len(title) < 3 {
		return util.InvalidArgument("Title must be at least 3 characters")
	}
	if len(title) > 100 {
		return util.InvalidArgument("Title must be at most 100 characters")
	}
	return nil
}

func validateCourseDescription(description string) error {
	if len(description) < 10 {
		return util.InvalidArgument("Description must be at least 10 characters")
	}
	if len(description) > 5000 {
		return util.InvalidArgument("Description must be at most 5000 characters")
	}
	return nil
}

func validateThumbnail(thumbnail string) error {
	if thumbnail == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(thumbnail); err != nil {
		return util.InvalidArgument("Thumbnail must be a valid URL")
	}
	return nil
}

func parseStatus(status string) (model.CourseStatus, error) {
	switch model.CourseStatus(status) {
	case "":
		return model.StatusDraft, nil
	case model.StatusDraft, model.StatusPublished:
		return model.CourseStatus(status), nil
	default:
		return "", util.InvalidArgument("Invalid status")
	}
}

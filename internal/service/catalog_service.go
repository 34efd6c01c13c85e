package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogDefaultLimit = 9
	catalogMaxLimit     = 50
	catalogCacheTTL     = time.Minute
	catalogVersionKey   = "catalog:version"
)

// CatalogQuery carries the public listing parameters before clamping.
type CatalogQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// EducatorInfo is the public projection of a course's educator. It never
// includes the email address.
type EducatorInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type CourseSummary struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Thumbnail       string             `json:"thumbnail,omitempty"`
	Status          model.CourseStatus `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	Educator        EducatorInfo       `json:"educator"`
	LessonCount     int64              `json:"lessonCount"`
	EnrollmentCount int64              `json:"enrollmentCount"`
}

type CatalogPage struct {
	Courses    []CourseSummary `json:"courses"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// CatalogService serves the public course listing: published courses only,
// newest first, with a short-lived redis page cache. The cache is versioned
// rather than enumerated, so invalidation is a single INCR.
type CatalogService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCatalogService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

func (s *CatalogService) List(q CatalogQuery) (*CatalogPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = catalogDefaultLimit
	}
	if q.Limit > catalogMaxLimit {
		q.Limit = catalogMaxLimit
	}

	cacheKey := s.cacheKey(q)
	if page, ok := s.cached(cacheKey); ok {
		return page, nil
	}

	courses, total, err := s.CourseRepo.ListPublished(q.Search, q.Category, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}
	lessonCounts, err := s.CourseRepo.LessonCounts(courseIDs)
	if err != nil {
		return nil, err
	}
	enrollmentCounts, err := s.CourseRepo.EnrollmentCounts(courseIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, summarize(course, lessonCounts[course.ID], enrollmentCounts[course.ID]))
	}

	page := &CatalogPage{
		Courses:    summaries,
		Total:      total,
		Page:       q.Page,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}

	s.store(cacheKey, page)
	return page, nil
}

// Invalidate bumps the catalog version so every cached page goes stale at
// once. Called after any course write.
func (s *CatalogService) Invalidate() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Incr(context.Background(), catalogVersionKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func (s *CatalogService) cacheKey(q CatalogQuery) string {
	version := "1"
	if s.Redis != nil {
		if v, err := s.Redis.Get(context.Background(), catalogVersionKey).Result(); err == nil {
			version = v
		}
	}
	return fmt.Sprintf("catalog:%s:p%d:l%d:s%s:c%s", version, q.Page, q.Limit, q.Search, q.Category)
}

func (s *CatalogService) cached(key string) (*CatalogPage, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	var page CatalogPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (s *CatalogService) store(key string, page *CatalogPage) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, raw, catalogCacheTTL).Err(); err != nil {
		logger.Log.Warn("Failed to cache catalog page", zap.Error(err))
	}
}

func summarize(course model.Course, lessonCount, enrollmentCount int64) CourseSummary {
	summary := CourseSummary{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Category:        course.Category,
		Thumbnail:       course.Thumbnail,
		Status:          course.Status,
		CreatedAt:       course.CreatedAt,
		LessonCount:     lessonCount,
		EnrollmentCount: enrollmentCount,
	}
	if course.Educator != nil {
		summary.Educator = EducatorInfo{
			ID:    course.Educator.ID,
			Name:  course.Educator.Name,
			Image: course.Educator.Image,
		}
	}
	return summary
}

package repository

import (
	"eduflow_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindDetail loads a course with its educator and lessons in display order.
func (r *CourseRepository) FindDetail(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Educator").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC")
		}).
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// DeleteCascade removes the course together with its lessons and
// enrollments in a single transaction so no orphan rows survive.
func (r *CourseRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}

// ListPublished filters the public catalog: only PUBLISHED courses,
// optional case-insensitive substring search on title or description,
// optional exact category match, newest first.
func (r *CourseRepository) ListPublished(search, category string, offset, limit int) ([]model.Course, int64, error) {
	query := r.DB.Model(&model.Course{}).Where("status = ?", model.StatusPublished)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.
		Preload("Educator").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) ListByEducator(educatorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("educator_id = ?", educatorID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

type courseCount struct {
	CourseID uint
	N        int64
}

// LessonCounts batches lesson counts for a page of courses.
func (r *CourseRepository) LessonCounts(courseIDs []uint) (map[uint]int64, error) {
	return r.countByCourse(&model.Lesson{}, courseIDs)
}

// EnrollmentCounts batches enrollment counts for a page of courses.
func (r *CourseRepository) EnrollmentCounts(courseIDs []uint) (map[uint]int64, error) {
	return r.countByCourse(&model.Enrollment{}, courseIDs)
}

func (r *CourseRepository) countByCourse(table interface{}, courseIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	var rows []courseCount
	err := r.DB.Model(table).
		Select("course_id AS course_id, COUNT(*) AS n").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CourseID] = row.N
	}
	return counts, nil
}

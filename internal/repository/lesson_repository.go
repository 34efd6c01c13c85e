package repository

import (
	"eduflow_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) ListByCourse(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("`order` ASC").Find(&lessons).Error
	return lessons, err
}

// MaxOrder returns the highest order in the course, or -1 when it has no
// lessons. Runs on the caller's handle so it can share a transaction with
// the subsequent insert.
func (r *LessonRepository) MaxOrder(tx *gorm.DB, courseID uint) (int, error) {
	var current int
	err := tx.Model(&model.Lesson{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(MAX(`order`), -1)").
		Scan(&current).Error
	return current, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

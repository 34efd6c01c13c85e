package model

import "time"

// Enrollment links a student to a published course. The composite unique
// index is the source of truth for the one-enrollment-per-pair invariant;
// application-level pre-checks are only a fast path.
//
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_student_course" json:"studentId"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_student_course" json:"courseId"`
	Progress   int       `gorm:"not null;default:0" json:"progress"`
	EnrolledAt time.Time `json:"enrolledAt"`

	Student *User   `gorm:"foreignKey:StudentID" json:"-"`
	Course  *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

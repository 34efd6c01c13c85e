package model

type CourseStatus string

const (
	StatusDraft     CourseStatus = "DRAFT"
	StatusPublished CourseStatus = "PUBLISHED"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Category    string       `gorm:"size:100;not null;index" json:"category"`
	Thumbnail   string       `gorm:"size:255" json:"thumbnail,omitempty"`
	Status      CourseStatus `gorm:"size:20;default:'DRAFT';index" json:"status"`
	EducatorID  uint         `gorm:"not null;index" json:"educatorId"`

	Educator    *User        `gorm:"foreignKey:EducatorID" json:"educator,omitempty"`
	Lessons     []Lesson     `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

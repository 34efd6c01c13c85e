package model

// Lesson order is a display sequence within a course. It is assigned
// max(order)+1 on creation when omitted and is never renumbered on delete,
// so gaps and duplicates are legal.
//
// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title    string `gorm:"size:100;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Order    int    `gorm:"column:order;not null;default:0" json:"order"`
	CourseID uint   `gorm:"not null;index" json:"courseId"`
}

func (Lesson) TableName() string {
	return "lessons"
}

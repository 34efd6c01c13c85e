package model

import (
	"time"
)

// BaseModel is embedded by every entity. Deletes are hard deletes so that
// cascade cleanup (course -> lessons/enrollments) leaves no orphan rows.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

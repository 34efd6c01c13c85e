package model

type UserRole string

const (
	RoleStudent  UserRole = "STUDENT"
	RoleEducator UserRole = "EDUCATOR"
	RoleAdmin    UserRole = "ADMIN"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'STUDENT'" json:"role"`
	Image    string   `gorm:"size:255" json:"image,omitempty"`
}

func (User) TableName() string {
	return "users"
}

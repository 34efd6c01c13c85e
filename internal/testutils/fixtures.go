package testutils

import (
	"fmt"
	"time"

	"eduflow_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTestUser creates a user with a unique email.
func CreateTestUser(t testingT, db *gorm.DB, opts ...UserOption) *model.User {
	user := &model.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("test_%s@example.com", uuid.New().String()),
		Password: "not-a-real-hash",
		Role:     model.RoleStudent,
	}
	for _, opt := range opts {
		opt(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

type UserOption func(*model.User)

func WithRole(role model.UserRole) UserOption {
	return func(u *model.User) { u.Role = role }
}

func WithName(name string) UserOption {
	return func(u *model.User) { u.Name = name }
}

func WithEmail(email string) UserOption {
	return func(u *model.User) { u.Email = email }
}

func WithPassword(hash string) UserOption {
	return func(u *model.User) { u.Password = hash }
}

// CreateTestCourse creates a published course owned by the educator.
func CreateTestCourse(t testingT, db *gorm.DB, educatorID uint, opts ...CourseOption) *model.Course {
	course := &model.Course{
		Title:       "Test Course " + uuid.New().String()[:8],
		Description: "A course used by the test suite.",
		Category:    "Programming",
		Status:      model.StatusPublished,
		EducatorID:  educatorID,
	}
	for _, opt := range opts {
		opt(course)
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return course
}

type CourseOption func(*model.Course)

func WithStatus(status model.CourseStatus) CourseOption {
	return func(c *model.Course) { c.Status = status }
}

func WithTitle(title string) CourseOption {
	return func(c *model.Course) { c.Title = title }
}

func WithCategory(category string) CourseOption {
	return func(c *model.Course) { c.Category = category }
}

func WithDescription(description string) CourseOption {
	return func(c *model.Course) { c.Description = description }
}

func WithCreatedAt(at time.Time) CourseOption {
	return func(c *model.Course) { c.CreatedAt = at }
}

// CreateTestLesson adds a lesson at the given order.
func CreateTestLesson(t testingT, db *gorm.DB, courseID uint, order int) *model.Lesson {
	lesson := &model.Lesson{
		Title:    fmt.Sprintf("Lesson %d", order),
		Content:  "Lesson content long enough to validate.",
		Order:    order,
		CourseID: courseID,
	}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("Failed to create test lesson: %v", err)
	}
	return lesson
}

// CreateTestEnrollment enrolls the student with the given progress.
func CreateTestEnrollment(t testingT, db *gorm.DB, studentID, courseID uint, progress int) *model.Enrollment {
	enrollment := &model.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Progress:   progress,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(enrollment).Error; err != nil {
		t.Fatalf("Failed to create test enrollment: %v", err)
	}
	return enrollment
}

// testingT is the subset of *testing.T the fixtures need.
type testingT interface {
	Fatalf(format string, args ...interface{})
}

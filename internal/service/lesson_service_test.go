package service

import (
	"errors"
	"testing"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/testutils"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

func newLessonService(db *gorm.DB) *LessonService {
	return NewLessonService(repository.NewCourseRepository(db), repository.NewLessonRepository(db))
}

func intPtr(v int) *int { return &v }

func TestAddLessonAutoOrder(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	course := testutils.CreateTestCourse(t, db, educator.ID)

	first, err := svc.Add(educator.ID, course.ID, AddLessonInput{
		Title:   "Getting Started",
		Content: "Welcome to the course, let's begin.",
	})
	if err != nil {
		t.Fatalf("Add first: %v", err)
	}
	if first.Order != 0 {
		t.Errorf("first lesson Order = %d, want 0", first.Order)
	}

	second, err := svc.Add(educator.ID, course.ID, AddLessonInput{
		Title:   "Core Concepts",
		Content: "Now we dig into the fundamentals.",
	})
	if err != nil {
		t.Fatalf("Add second: %v", err)
	}
	if second.Order != 1 {
		t.Errorf("second lesson Order = %d, want 1", second.Order)
	}

	// An explicit high order moves the append point.
	_, err = svc.Add(educator.ID, course.ID, AddLessonInput{
		Title:   "Bonus Material",
		Content: "Extra content placed far down the list.",
		Order:   intPtr(10),
	})
	if err != nil {
		t.Fatalf("Add explicit: %v", err)
	}
	next, err := svc.Add(educator.ID, course.ID, AddLessonInput{
		Title:   "Wrap Up",
		Content: "Closing notes for the whole course.",
	})
	if err != nil {
		t.Fatalf("Add after explicit: %v", err)
	}
	if next.Order != 11 {
		t.Errorf("Order after explicit 10 = %d, want 11", next.Order)
	}
}

func TestDeleteLessonDoesNotRenumber(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	course := testutils.CreateTestCourse(t, db, educator.ID)

	l0 := testutils.CreateTestLesson(t, db, course.ID, 0)
	testutils.CreateTestLesson(t, db, course.ID, 1)
	l2 := testutils.CreateTestLesson(t, db, course.ID, 2)

	lessons, err := svc.List(course.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lessons) != 3 {
		t.Fatalf("len(lessons) = %d, want 3", len(lessons))
	}

	if err := svc.Delete(educator.ID, course.ID, lessons[1].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, err := svc.List(course.ID)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("len(remaining) = %d, want 2", len(remaining))
	}
	if remaining[0].ID != l0.ID || remaining[0].Order != 0 {
		t.Errorf("remaining[0] = id %d order %d", remaining[0].ID, remaining[0].Order)
	}
	if remaining[1].ID != l2.ID || remaining[1].Order != 2 {
		t.Errorf("remaining[1] = id %d order %d, want order 2 kept", remaining[1].ID, remaining[1].Order)
	}

	// The next auto-ordered lesson still lands after the gap.
	next, err := svc.Add(educator.ID, course.ID, AddLessonInput{
		Title:   "New Chapter",
		Content: "Content added after a deletion happened.",
	})
	if err != nil {
		t.Fatalf("Add after delete: %v", err)
	}
	if next.Order != 3 {
		t.Errorf("Order = %d, want 3", next.Order)
	}
}

func TestLessonWritesRequireOwningEducator(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	owner := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	other := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	admin := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleAdmin))
	course := testutils.CreateTestCourse(t, db, owner.ID)
	lesson := testutils.CreateTestLesson(t, db, course.ID, 0)

	input := AddLessonInput{Title: "Intruding Lesson", Content: "Should never be created here."}

	// Another educator is rejected, and so is an admin: lesson management
	// has no admin override.
	for _, user := range []*model.User{other, admin} {
		if _, err := svc.Add(user.ID, course.ID, input); !errors.Is(err, util.ErrForbidden) {
			t.Errorf("Add as user %d (%s): err = %v, want forbidden", user.ID, user.Role, err)
		}
		if _, err := svc.Update(user.ID, course.ID, lesson.ID, UpdateLessonInput{Title: "Hijacked", Content: "Replaced by someone else."}); !errors.Is(err, util.ErrForbidden) {
			t.Errorf("Update as user %d (%s): err = %v, want forbidden", user.ID, user.Role, err)
		}
		if err := svc.Delete(user.ID, course.ID, lesson.ID); !errors.Is(err, util.ErrForbidden) {
			t.Errorf("Delete as user %d (%s): err = %v, want forbidden", user.ID, user.Role, err)
		}
	}

	// The owner can do all three.
	updated, err := svc.Update(owner.ID, course.ID, lesson.ID, UpdateLessonInput{
		Title:   "Renamed Lesson",
		Content: "Owner replaced the lesson content.",
	})
	if err != nil {
		t.Fatalf("Update as owner: %v", err)
	}
	if updated.Title != "Renamed Lesson" {
		t.Errorf("Title = %q", updated.Title)
	}
	if err := svc.Delete(owner.ID, course.ID, lesson.ID); err != nil {
		t.Fatalf("Delete as owner: %v", err)
	}
}

func TestLessonCrossCourseReportsNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	courseA := testutils.CreateTestCourse(t, db, educator.ID)
	courseB := testutils.CreateTestCourse(t, db, educator.ID)
	lessonB := testutils.CreateTestLesson(t, db, courseB.ID, 0)

	// lessonB exists, but not under courseA.
	if _, err := svc.Update(educator.ID, courseA.ID, lessonB.ID, UpdateLessonInput{
		Title:   "Misdirected",
		Content: "Should not reach the other course.",
	}); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("cross-course update: err = %v, want not-found", err)
	}
	if err := svc.Delete(educator.ID, courseA.ID, lessonB.ID); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("cross-course delete: err = %v, want not-found", err)
	}
}

func TestAddLessonValidation(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	course := testutils.CreateTestCourse(t, db, educator.ID)

	tests := []struct {
		name  string
		input AddLessonInput
	}{
		{"short title", AddLessonInput{Title: "ab", Content: "Long enough lesson content."}},
		{"short content", AddLessonInput{Title: "Valid Title", Content: "short"}},
		{"negative order", AddLessonInput{Title: "Valid Title", Content: "Long enough lesson content.", Order: intPtr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add(educator.ID, course.ID, tt.input); !errors.Is(err, util.ErrInvalidArgument) {
				t.Errorf("err = %v, want invalid-argument", err)
			}
		})
	}
}

func TestAddLessonMissingCourse(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newLessonService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))

	_, err := svc.Add(educator.ID, 9999, AddLessonInput{Title: "Orphan", Content: "No course to attach this to."})
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}

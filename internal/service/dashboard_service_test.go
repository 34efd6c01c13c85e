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

func newDashboardService(db *gorm.DB) *DashboardService {
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	return NewDashboardService(userRepo, courseRepo, enrollmentRepo, NewEnrollmentService(enrollmentRepo, courseRepo))
}

func TestStudentDashboard(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newDashboardService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	student := testutils.CreateTestUser(t, db)
	courseA := testutils.CreateTestCourse(t, db, educator.ID)
	courseB := testutils.CreateTestCourse(t, db, educator.ID)
	courseC := testutils.CreateTestCourse(t, db, educator.ID)
	testutils.CreateTestEnrollment(t, db, student.ID, courseA.ID, 100)
	testutils.CreateTestEnrollment(t, db, student.ID, courseB.ID, 50)
	testutils.CreateTestEnrollment(t, db, student.ID, courseC.ID, 0)

	result, err := svc.Summary(student.ID, model.RoleStudent)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	summary, ok := result.(StudentSummary)
	if !ok {
		t.Fatalf("result has type %T", result)
	}

	if summary.EnrolledCount != 3 {
		t.Errorf("EnrolledCount = %d, want 3", summary.EnrolledCount)
	}
	if summary.AverageProgress != 50 {
		t.Errorf("AverageProgress = %d, want 50", summary.AverageProgress)
	}
	if summary.CompletedCount != 1 {
		t.Errorf("CompletedCount = %d, want 1", summary.CompletedCount)
	}
	if len(summary.Enrollments) != 3 {
		t.Errorf("len(Enrollments) = %d, want 3", len(summary.Enrollments))
	}
}

func TestStudentDashboardEmpty(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newDashboardService(db)

	student := testutils.CreateTestUser(t, db)

	result, err := svc.Summary(student.ID, model.RoleStudent)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	summary := result.(StudentSummary)
	if summary.EnrolledCount != 0 || summary.AverageProgress != 0 || summary.CompletedCount != 0 {
		t.Errorf("empty dashboard = %+v", summary)
	}
}

func TestEducatorDashboard(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newDashboardService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	rival := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	studentA := testutils.CreateTestUser(t, db)
	studentB := testutils.CreateTestUser(t, db)

	published := testutils.CreateTestCourse(t, db, educator.ID)
	testutils.CreateTestCourse(t, db, educator.ID, testutils.WithStatus(model.StatusDraft))
	testutils.CreateTestCourse(t, db, rival.ID) // not theirs

	testutils.CreateTestEnrollment(t, db, studentA.ID, published.ID, 10)
	testutils.CreateTestEnrollment(t, db, studentB.ID, published.ID, 90)

	result, err := svc.Summary(educator.ID, model.RoleEducator)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	summary, ok := result.(EducatorSummary)
	if !ok {
		t.Fatalf("result has type %T", result)
	}

	if summary.CourseCount != 2 {
		t.Errorf("CourseCount = %d, want 2", summary.CourseCount)
	}
	if summary.PublishedCount != 1 {
		t.Errorf("PublishedCount = %d, want 1", summary.PublishedCount)
	}
	if summary.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", summary.TotalStudents)
	}
}

func TestAdminDashboard(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newDashboardService(db)

	admin := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleAdmin))
	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	student := testutils.CreateTestUser(t, db)
	course := testutils.CreateTestCourse(t, db, educator.ID)
	testutils.CreateTestEnrollment(t, db, student.ID, course.ID, 0)

	result, err := svc.Summary(admin.ID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	summary, ok := result.(AdminSummary)
	if !ok {
		t.Fatalf("result has type %T", result)
	}

	if summary.TotalUsers != 3 {
		t.Errorf("TotalUsers = %d, want 3", summary.TotalUsers)
	}
	if summary.TotalCourses != 1 {
		t.Errorf("TotalCourses = %d, want 1", summary.TotalCourses)
	}
	if summary.TotalEnrollments != 1 {
		t.Errorf("TotalEnrollments = %d, want 1", summary.TotalEnrollments)
	}
	if len(summary.RecentUsers) != 3 {
		t.Errorf("len(RecentUsers) = %d, want 3", len(summary.RecentUsers))
	}
}

func TestDashboardUnknownRole(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newDashboardService(db)

	if _, err := svc.Summary(1, model.UserRole("SUPERUSER")); !errors.Is(err, util.ErrForbidden) {
		t.Errorf("err = %v, want forbidden", err)
	}
}

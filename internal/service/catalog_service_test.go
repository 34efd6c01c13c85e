package service

import (
	"fmt"
	"testing"
	"time"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/testutils"

	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewCourseRepository(db), nil)
}

func TestCatalogListsOnlyPublished(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newCatalogService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	testutils.CreateTestCourse(t, db, educator.ID, testutils.WithStatus(model.StatusPublished))
	testutils.CreateTestCourse(t, db, educator.ID, testutils.WithStatus(model.StatusDraft))
	testutils.CreateTestCourse(t, db, educator.ID, testutils.WithStatus(model.StatusDraft))

	page, err := svc.List(CatalogQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Total = %d, want 1", page.Total)
	}
	for _, course := range page.Courses {
		if course.Status != model.StatusPublished {
			t.Errorf("listed course %d has status %s", course.ID, course.Status)
		}
	}
}

func TestCatalogPaginationMath(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newCatalogService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 20; i++ {
		testutils.CreateTestCourse(t, db, educator.ID,
			testutils.WithTitle(fmt.Sprintf("Course %02d", i)),
			testutils.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
	}

	first, err := svc.List(CatalogQuery{Page: 1, Limit: 9})
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if first.Total != 20 {
		t.Errorf("Total = %d, want 20", first.Total)
	}
	if first.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", first.TotalPages)
	}
	if len(first.Courses) != 9 {
		t.Errorf("page 1 size = %d, want 9", len(first.Courses))
	}
	// Newest first.
	if first.Courses[0].Title != "Course 19" {
		t.Errorf("first listed = %q, want Course 19", first.Courses[0].Title)
	}

	last, err := svc.List(CatalogQuery{Page: 3, Limit: 9})
	if err != nil {
		t.Fatalf("List page 3: %v", err)
	}
	if len(last.Courses) != 2 {
		t.Errorf("page 3 size = %d, want 2", len(last.Courses))
	}

	empty, err := svc.List(CatalogQuery{Page: 4, Limit: 9})
	if err != nil {
		t.Fatalf("List page 4: %v", err)
	}
	if len(empty.Courses) != 0 {
		t.Errorf("page 4 size = %d, want 0", len(empty.Courses))
	}
}

func TestCatalogClampsPageAndLimit(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newCatalogService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	for i := 0; i < 12; i++ {
		testutils.CreateTestCourse(t, db, educator.ID)
	}

	page, err := svc.List(CatalogQuery{Page: -5, Limit: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("Page = %d, want 1", page.Page)
	}
	if len(page.Courses) != 9 {
		t.Errorf("default limit gave %d courses, want 9", len(page.Courses))
	}

	big, err := svc.List(CatalogQuery{Page: 1, Limit: 500})
	if err != nil {
		t.Fatalf("List with huge limit: %v", err)
	}
	if len(big.Courses) != 12 {
		t.Errorf("len = %d, want all 12 under the 50 cap", len(big.Courses))
	}
	if big.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", big.TotalPages)
	}
}

func TestCatalogSearchAndCategory(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newCatalogService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator))
	testutils.CreateTestCourse(t, db, educator.ID,
		testutils.WithTitle("Advanced Go Patterns"),
		testutils.WithCategory("Programming"))
	testutils.CreateTestCourse(t, db, educator.ID,
		testutils.WithTitle("Watercolor Basics"),
		testutils.WithCategory("Art"),
		testutils.WithDescription("Painting with golang-free pigments and water."))
	testutils.CreateTestCourse(t, db, educator.ID,
		testutils.WithTitle("Figure Drawing"),
		testutils.WithCategory("Art"))

	// Case-insensitive match on the title.
	byTitle, err := svc.List(CatalogQuery{Search: "advanced GO"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if byTitle.Total != 1 || byTitle.Courses[0].Title != "Advanced Go Patterns" {
		t.Errorf("search by title: total %d", byTitle.Total)
	}

	// Search also covers the description.
	byDescription, err := svc.List(CatalogQuery{Search: "pigments"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if byDescription.Total != 1 || byDescription.Courses[0].Title != "Watercolor Basics" {
		t.Errorf("search by description: total %d", byDescription.Total)
	}

	// Category is an exact filter.
	art, err := svc.List(CatalogQuery{Category: "Art"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if art.Total != 2 {
		t.Errorf("category filter: total %d, want 2", art.Total)
	}

	// Filters combine.
	both, err := svc.List(CatalogQuery{Search: "figure", Category: "Art"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if both.Total != 1 || both.Courses[0].Title != "Figure Drawing" {
		t.Errorf("combined filters: total %d", both.Total)
	}
}

func TestCatalogCountsAndProjection(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newCatalogService(db)

	educator := testutils.CreateTestUser(t, db, testutils.WithRole(model.RoleEducator), testutils.WithName("Sarah Chen"))
	student := testutils.CreateTestUser(t, db)
	course := testutils.CreateTestCourse(t, db, educator.ID)
	testutils.CreateTestLesson(t, db, course.ID, 0)
	testutils.CreateTestLesson(t, db, course.ID, 1)
	testutils.CreateTestLesson(t, db, course.ID, 2)
	testutils.CreateTestEnrollment(t, db, student.ID, course.ID, 0)

	page, err := svc.List(CatalogQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Courses) != 1 {
		t.Fatalf("len = %d, want 1", len(page.Courses))
	}

	summary := page.Courses[0]
	if summary.LessonCount != 3 {
		t.Errorf("LessonCount = %d, want 3", summary.LessonCount)
	}
	if summary.EnrollmentCount != 1 {
		t.Errorf("EnrollmentCount = %d, want 1", summary.EnrollmentCount)
	}
	if summary.Educator.Name != "Sarah Chen" {
		t.Errorf("Educator.Name = %q", summary.Educator.Name)
	}
}

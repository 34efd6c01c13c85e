package service

import (
	"math"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"
)

type StudentSummary struct {
	EnrolledCount   int              `json:"enrolledCount"`
	AverageProgress int              `json:"averageProgress"`
	CompletedCount  int              `json:"completedCount"`
	Enrollments     []EnrollmentView `json:"enrollments"`
}

type EducatorSummary struct {
	CourseCount    int             `json:"courseCount"`
	PublishedCount int             `json:"publishedCount"`
	TotalStudents  int64           `json:"totalStudents"`
	Courses        []CourseSummary `json:"courses"`
}

type AdminSummary struct {
	TotalUsers       int64        `json:"totalUsers"`
	TotalCourses     int64        `json:"totalCourses"`
	TotalEnrollments int64        `json:"totalEnrollments"`
	RecentUsers      []model.User `json:"recentUsers"`
}

// summaryProvider builds the dashboard payload for one role. Each role gets
// its own implementation instead of one handler switching on the role.
type summaryProvider interface {
	Summary(userID uint) (interface{}, error)
}

type DashboardService struct {
	providers map[model.UserRole]summaryProvider
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	enrollments *EnrollmentService,
) *DashboardService {
	return &DashboardService{
		providers: map[model.UserRole]summaryProvider{
			model.RoleStudent:  &studentSummaryProvider{Enrollments: enrollments},
			model.RoleEducator: &educatorSummaryProvider{CourseRepo: courseRepo},
			model.RoleAdmin: &adminSummaryProvider{
				UserRepo:       userRepo,
				CourseRepo:     courseRepo,
				EnrollmentRepo: enrollmentRepo,
			},
		},
	}
}

func (s *DashboardService) Summary(userID uint, role model.UserRole) (interface{}, error) {
	provider, ok := s.providers[role]
	if !ok {
		return nil, util.ErrForbidden
	}
	return provider.Summary(userID)
}

type studentSummaryProvider struct {
	Enrollments *EnrollmentService
}

func (p *studentSummaryProvider) Summary(userID uint) (interface{}, error) {
	views, err := p.Enrollments.ListForStudent(userID)
	if err != nil {
		return nil, err
	}

	summary := StudentSummary{
		EnrolledCount: len(views),
		Enrollments:   views,
	}
	if len(views) > 0 {
		total := 0
		for _, view := range views {
			total += view.Progress
			if view.Progress == 100 {
				summary.CompletedCount++
			}
		}
		summary.AverageProgress = int(math.Round(float64(total) / float64(len(views))))
	}
	return summary, nil
}

type educatorSummaryProvider struct {
	CourseRepo *repository.CourseRepository
}

func (p *educatorSummaryProvider) Summary(userID uint) (interface{}, error) {
	courses, err := p.CourseRepo.ListByEducator(userID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}
	lessonCounts, err := p.CourseRepo.LessonCounts(courseIDs)
	if err != nil {
		return nil, err
	}
	enrollmentCounts, err := p.CourseRepo.EnrollmentCounts(courseIDs)
	if err != nil {
		return nil, err
	}

	summary := EducatorSummary{
		CourseCount: len(courses),
		Courses:     make([]CourseSummary, 0, len(courses)),
	}
	for _, course := range courses {
		if course.Status == model.StatusPublished {
			summary.PublishedCount++
		}
		summary.TotalStudents += enrollmentCounts[course.ID]
		summary.Courses = append(summary.Courses, summarize(course, lessonCounts[course.ID], enrollmentCounts[course.ID]))
	}
	return summary, nil
}

type adminSummaryProvider struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func (p *adminSummaryProvider) Summary(_ uint) (interface{}, error) {
	totalUsers, err := p.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	totalCourses, err := p.CourseRepo.Count()
	if err != nil {
		return nil, err
	}
	totalEnrollments, err := p.EnrollmentRepo.Count()
	if err != nil {
		return nil, err
	}
	recentUsers, err := p.UserRepo.FindRecent(10)
	if err != nil {
		return nil, err
	}

	return AdminSummary{
		TotalUsers:       totalUsers,
		TotalCourses:     totalCourses,
		TotalEnrollments: totalEnrollments,
		RecentUsers:      recentUsers,
	}, nil
}

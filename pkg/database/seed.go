package database

import (
	"time"

	"eduflow_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedDemoData loads the demo fixture: one admin, two educators, three
// students (password "Password123"), six courses (four published, two
// draft) and seven enrollments. Only runs against an empty users table.
func seedDemoData(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hashed)

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &model.User{Name: "Admin User", Email: "admin@eduflow.com", Password: password, Role: model.RoleAdmin}
		educator1 := &model.User{Name: "Dr. Sarah Johnson", Email: "sarah@eduflow.com", Password: password, Role: model.RoleEducator}
		educator2 := &model.User{Name: "Prof. Mike Chen", Email: "mike@eduflow.com", Password: password, Role: model.RoleEducator}
		student1 := &model.User{Name: "Alice Williams", Email: "alice@eduflow.com", Password: password, Role: model.RoleStudent}
		student2 := &model.User{Name: "Bob Martinez", Email: "bob@eduflow.com", Password: password, Role: model.RoleStudent}
		student3 := &model.User{Name: "Carol Davis", Email: "carol@eduflow.com", Password: password, Role: model.RoleStudent}

		for _, u := range []*model.User{admin, educator1, educator2, student1, student2, student3} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		courses := []*model.Course{
			{
				Title:       "Full-Stack Web Development with Next.js",
				Description: "Master modern web development with Next.js, React, TypeScript, and Tailwind CSS. Build production-ready applications from scratch with server-side rendering, API routes, and database integration.",
				Category:    "Web Development",
				Status:      model.StatusPublished,
				EducatorID:  educator1.ID,
				Lessons: []model.Lesson{
					{Title: "Introduction to Next.js", Content: "Next.js is a React framework that enables server-side rendering and static site generation. We explore the core concepts including the App Router, file-based routing, and server components.", Order: 1},
					{Title: "TypeScript Fundamentals", Content: "TypeScript adds static typing to JavaScript, helping catch errors early. We cover interfaces, types, generics, and how TypeScript integrates with React components.", Order: 2},
					{Title: "Building APIs with Route Handlers", Content: "Learn how to create RESTful endpoints, handle different HTTP methods, validate request data, and return appropriate responses. We build a complete CRUD API.", Order: 3},
					{Title: "Database Integration with Prisma", Content: "Learn how to define schemas, run migrations, and perform CRUD operations. We connect the app to PostgreSQL and build data models for a real application.", Order: 4},
					{Title: "Authentication and Authorization", Content: "Implement secure authentication with JWT tokens, session management, protected routes, and role-based access control. We build a complete auth system from scratch.", Order: 5},
				},
			},
			{
				Title:       "Data Science with Python",
				Description: "Dive into data science with Python. Learn pandas, NumPy, matplotlib, and scikit-learn. Analyze real-world datasets, build machine learning models, and create compelling data visualizations.",
				Category:    "Data Science",
				Status:      model.StatusPublished,
				EducatorID:  educator2.ID,
				Lessons: []model.Lesson{
					{Title: "Python for Data Science", Content: "Get started with Python for data science. We cover essential Python concepts, Jupyter notebooks, and the scientific computing ecosystem.", Order: 1},
					{Title: "Data Analysis with Pandas", Content: "Pandas is the go-to library for data analysis in Python. Learn how to load, clean, transform, and analyze datasets with DataFrames.", Order: 2},
					{Title: "Data Visualization", Content: "Create stunning visualizations with matplotlib and seaborn. Learn about chart types, customization options, and best practices for presenting insights.", Order: 3},
					{Title: "Machine Learning Basics", Content: "Introduction to machine learning with scikit-learn. Understand supervised and unsupervised learning, train models, and evaluate performance.", Order: 4},
				},
			},
			{
				Title:       "UI/UX Design Principles",
				Description: "Learn the fundamentals of user interface and user experience design. Understand design thinking, wireframing, prototyping, and usability testing to create beautiful and functional digital products.",
				Category:    "Design",
				Status:      model.StatusPublished,
				EducatorID:  educator1.ID,
				Lessons: []model.Lesson{
					{Title: "Design Thinking Process", Content: "Design thinking is a human-centered approach to innovation. Learn the five stages: empathize, define, ideate, prototype, and test.", Order: 1},
					{Title: "Wireframing and Prototyping", Content: "Learn to create wireframes and prototypes using modern tools, and how to iterate on your designs based on feedback.", Order: 2},
					{Title: "Visual Design Fundamentals", Content: "Master the principles of visual design including typography, color theory, layout, and hierarchy.", Order: 3},
				},
			},
			{
				Title:       "Digital Marketing Strategy",
				Description: "Master digital marketing from SEO to social media marketing. Learn to create effective campaigns, analyze metrics, and drive business growth through online channels.",
				Category:    "Marketing",
				Status:      model.StatusPublished,
				EducatorID:  educator2.ID,
				Lessons: []model.Lesson{
					{Title: "SEO Fundamentals", Content: "Search Engine Optimization is crucial for online visibility. Learn on-page and off-page SEO techniques and keyword research.", Order: 1},
					{Title: "Social Media Marketing", Content: "Leverage social media platforms to build brand awareness, with content strategies per platform and ROI measurement.", Order: 2},
					{Title: "Email Marketing", Content: "Build effective email campaigns. Learn list building, segmentation, automation, A/B testing, and compelling content.", Order: 3},
				},
			},
			{
				Title:       "Advanced React Patterns",
				Description: "Take your React skills to the next level. Learn advanced patterns like compound components, render props, custom hooks, and state machines for building scalable applications.",
				Category:    "Web Development",
				Status:      model.StatusDraft,
				EducatorID:  educator1.ID,
				Lessons: []model.Lesson{
					{Title: "Compound Components", Content: "Learn the compound component pattern for building flexible and reusable component APIs using React context.", Order: 1},
					{Title: "Custom Hooks Deep Dive", Content: "Master custom hooks for extracting and reusing component logic: data fetching, form handling, animations, and more.", Order: 2},
				},
			},
			{
				Title:       "Business Analytics Fundamentals",
				Description: "Learn how to use data to drive business decisions. Cover statistical analysis, data modeling, and business intelligence tools to transform raw data into actionable insights.",
				Category:    "Business",
				Status:      model.StatusDraft,
				EducatorID:  educator2.ID,
				Lessons: []model.Lesson{
					{Title: "Introduction to Business Analytics", Content: "Understand the role of analytics in modern business: descriptive, predictive, and prescriptive analytics.", Order: 1},
					{Title: "Statistical Analysis for Business", Content: "Apply statistical methods to business problems: hypothesis testing, regression analysis, and interpreting results.", Order: 2},
				},
			},
		}

		for _, c := range courses {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		enrollments := []model.Enrollment{
			{StudentID: student1.ID, CourseID: courses[0].ID, Progress: 60, EnrolledAt: now},
			{StudentID: student1.ID, CourseID: courses[1].ID, Progress: 30, EnrolledAt: now},
			{StudentID: student2.ID, CourseID: courses[0].ID, Progress: 80, EnrolledAt: now},
			{StudentID: student2.ID, CourseID: courses[2].ID, Progress: 50, EnrolledAt: now},
			{StudentID: student3.ID, CourseID: courses[1].ID, Progress: 100, EnrolledAt: now},
			{StudentID: student3.ID, CourseID: courses[3].ID, Progress: 20, EnrolledAt: now},
			{StudentID: student3.ID, CourseID: courses[0].ID, Progress: 40, EnrolledAt: now},
		}
		for i := range enrollments {
			if err := tx.Create(&enrollments[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

package testutils

import (
	"testing"

	"eduflow_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with all tables migrated.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey, matching the production MySQL setup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Enrollment{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		// Shared-cache memory databases persist across connections for the
		// life of the process, so each test wipes its own rows.
		db.Exec("DELETE FROM enrollments")
		db.Exec("DELETE FROM lessons")
		db.Exec("DELETE FROM courses")
		db.Exec("DELETE FROM users")
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

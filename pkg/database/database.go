package database

import (
	"fmt"
	"log"

	"eduflow_backend/internal/config"
	"eduflow_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key errors become gorm.ErrDuplicatedKey; the enrollment
		// service relies on this to treat the unique index as the source of
		// truth for one-enrollment-per-pair.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// In release mode the schema is only touched when explicitly requested
	// with -migrate or -migrate-only.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.Lesson{},
			&model.Enrollment{},
		); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	// Demo fixture for a fresh database.
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		if err := seedDemoData(db); err != nil {
			return nil, err
		}
		log.Println("Seeded demo data")
	}

	return db, nil
}

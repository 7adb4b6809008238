package database

import (
	"fmt"
	"time"

	"eggslist_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the postgres connection pool. TranslateError maps
// driver errors onto gorm's portable sentinels, which the repositories
// rely on for duplicate-key detection.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.LocationCountry{},
		&models.LocationState{},
		&models.LocationCity{},
		&models.LocationZipCode{},
		&models.User{},
		&models.SellerApplication{},
		&models.UserFavoriteFarm{},
		&models.Category{},
		&models.Subcategory{},
		&models.ProductArticle{},
		&models.BlogCategory{},
		&models.BlogArticle{},
		&models.Testimonial{},
		&models.FAQ{},
	)
}

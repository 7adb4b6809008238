package repositories

import (
	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

type SiteConfigRepository interface {
	ListTestimonials() ([]models.Testimonial, error)
	ListFAQs() ([]models.FAQ, error)
}

type SiteConfigRepositoryImpl struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &SiteConfigRepositoryImpl{db: db}
}

func (r *SiteConfigRepositoryImpl) ListTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("position, created_at").Find(&testimonials).Error
	return testimonials, err
}

func (r *SiteConfigRepositoryImpl) ListFAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Order("position, created_at").Find(&faqs).Error
	return faqs, err
}

package services

import (
	"context"

	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/pkg/apperrors"
)

type SiteConfigService interface {
	ListTestimonials(ctx context.Context) ([]dto.TestimonialView, error)
	ListFAQs(ctx context.Context) ([]dto.FAQView, error)
}

type SiteConfigServiceImpl struct {
	siteConfig repositories.SiteConfigRepository
}

func NewSiteConfigService(siteConfig repositories.SiteConfigRepository) SiteConfigService {
	return &SiteConfigServiceImpl{siteConfig: siteConfig}
}

func (s *SiteConfigServiceImpl) ListTestimonials(ctx context.Context) ([]dto.TestimonialView, error) {
	testimonials, err := s.siteConfig.ListTestimonials()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.TestimonialView, 0, len(testimonials))
	for _, t := range testimonials {
		views = append(views, dto.NewTestimonialView(t))
	}
	return views, nil
}

func (s *SiteConfigServiceImpl) ListFAQs(ctx context.Context) ([]dto.FAQView, error) {
	faqs, err := s.siteConfig.ListFAQs()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.FAQView, 0, len(faqs))
	for _, f := range faqs {
		views = append(views, dto.NewFAQView(f))
	}
	return views, nil
}

package handlers

import (
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.services.SiteConfig.ListTestimonials(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"testimonials": testimonials})
}

func (h *Handler) ListFAQs(c *gin.Context) {
	faqs, err := h.services.SiteConfig.ListFAQs(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"faqs": faqs})
}

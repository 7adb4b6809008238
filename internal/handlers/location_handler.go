package handlers

import (
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListStates(c *gin.Context) {
	states, err := h.services.Locations.ListStates(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"states": states})
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.services.Locations.ListCities(c.Request.Context(), c.Param("state"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"cities": cities})
}

func (h *Handler) ListZipCodes(c *gin.Context) {
	zips, err := h.services.Locations.ListZipCodes(c.Request.Context(), c.Param("city"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"zip_codes": zips})
}

// GetViewerLocation returns the viewer's current location, or
// {"location": null} when none is known.
func (h *Handler) GetViewerLocation(c *gin.Context) {
	location, err := h.services.Locations.ViewerLocation(c.Request.Context(), viewer(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"location": location})
}

func (h *Handler) SetViewerLocation(c *gin.Context) {
	var req struct {
		ZipSlug string `json:"zip_slug"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.ZipSlug == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing zip_slug"))
		return
	}

	location, err := h.services.Locations.SetViewerLocation(c.Request.Context(), viewer(c), req.ZipSlug)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"location": location})
}

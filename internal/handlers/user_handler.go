package handlers

import (
	"net/http"

	"eggslist_backend/internal/middleware"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.services.Users.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.services.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, profile)
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing or oversized image file"))
		return
	}
	defer file.Close()

	profile, err := h.services.Users.UploadAvatar(c.Request.Context(), middleware.UserID(c), file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, profile)
}

// Seller verification

func (h *Handler) ApplyForVerification(c *gin.Context) {
	var req dto.SellerApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.services.Sellers.Apply(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	created(c, view)
}

func (h *Handler) ListMyApplications(c *gin.Context) {
	views, err := h.services.Sellers.ListApplications(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"applications": views})
}

// Favorite farms

func (h *Handler) FollowFarm(c *gin.Context) {
	sellerID := c.Param("id")
	if err := h.services.Favorites.Follow(c.Request.Context(), middleware.UserID(c), sellerID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) UnfollowFarm(c *gin.Context) {
	sellerID := c.Param("id")
	if err := h.services.Favorites.Unfollow(c.Request.Context(), middleware.UserID(c), sellerID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) ListFavoriteFarms(c *gin.Context) {
	sellers, err := h.services.Favorites.ListFollowing(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"sellers": sellers})
}

package handlers

import (
	"eggslist_backend/internal/middleware"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.services.Users.Register(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	created(c, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.services.Users.Login(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, resp)
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing token"))
		return
	}

	if err := h.services.Users.VerifyEmail(c.Request.Context(), token); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"verified": true})
}

func (h *Handler) ResendVerification(c *gin.Context) {
	if err := h.services.Users.ResendVerification(c.Request.Context(), middleware.UserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Users.ChangePassword(c.Request.Context(), middleware.UserID(c), req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Users.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	// Always 204: the endpoint never reveals whether the address exists.
	noContent(c)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Users.ResetPassword(c.Request.Context(), req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

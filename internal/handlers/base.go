package handlers

import (
	"net/http"
	"strconv"

	"eggslist_backend/internal/middleware"
	"eggslist_backend/internal/services"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Handler is the shared base for all HTTP handlers.
type Handler struct {
	services *services.ServiceContainer
}

func New(services *services.ServiceContainer) *Handler {
	return &Handler{services: services}
}

// viewer builds the viewer context for the request: the authenticated
// user id when signed in, the anonymous session key otherwise.
func viewer(c *gin.Context) dto.ViewerContext {
	return dto.ViewerContext{
		UserID:    middleware.UserID(c),
		SessionID: middleware.SessionID(c),
	}
}

func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON payload"))
		return false
	}
	return true
}

func ok(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// paging reads limit/offset query params with sane bounds.
func paging(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

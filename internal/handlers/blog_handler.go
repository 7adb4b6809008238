package handlers

import (
	"eggslist_backend/internal/repositories"
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListBlogCategories(c *gin.Context) {
	categories, err := h.services.Blog.ListCategories(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"categories": categories})
}

func (h *Handler) ListBlogArticles(c *gin.Context) {
	limit, offset := paging(c)
	filter := repositories.BlogFilter{
		CategorySlug: c.Query("category"),
		Limit:        limit,
		Offset:       offset,
	}

	page, err := h.services.Blog.List(c.Request.Context(), filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, page)
}

func (h *Handler) GetBlogArticle(c *gin.Context) {
	article, err := h.services.Blog.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, article)
}

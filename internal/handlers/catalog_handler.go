package handlers

import (
	"net/http"

	"eggslist_backend/internal/middleware"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.services.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"categories": categories})
}

func (h *Handler) ListProducts(c *gin.Context) {
	limit, offset := paging(c)
	filter := repositories.ProductFilter{
		CategorySlug:    c.Query("category"),
		SubcategorySlug: c.Query("subcategory"),
		SellerID:        c.Query("seller"),
		Limit:           limit,
		Offset:          offset,
	}

	page, err := h.services.Catalog.ListProducts(c.Request.Context(), viewer(c), filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, page)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.services.Catalog.GetProduct(c.Request.Context(), viewer(c), c.Param("slug"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, product)
}

func (h *Handler) ListSellerProducts(c *gin.Context) {
	products, err := h.services.Catalog.ListSellerProducts(c.Request.Context(), viewer(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.services.Catalog.CreateProduct(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	created(c, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.services.Catalog.UpdateProduct(c.Request.Context(), middleware.UserID(c), c.Param("slug"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.services.Catalog.DeleteProduct(c.Request.Context(), middleware.UserID(c), c.Param("slug")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) UploadProductImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing or oversized image file"))
		return
	}
	defer file.Close()

	product, err := h.services.Catalog.UploadProductImage(c.Request.Context(), middleware.UserID(c), c.Param("slug"), file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	ok(c, product)
}

func (h *Handler) SetProductHidden(c *gin.Context) {
	var req struct {
		Hidden bool `json:"hidden"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Catalog.SetHidden(c.Request.Context(), middleware.UserID(c), c.Param("slug"), req.Hidden); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

func (h *Handler) SetProductOutOfStock(c *gin.Context) {
	var req struct {
		OutOfStock bool `json:"out_of_stock"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Catalog.SetOutOfStock(c.Request.Context(), middleware.UserID(c), c.Param("slug"), req.OutOfStock); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	noContent(c)
}

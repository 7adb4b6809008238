package repositories

import (
	"errors"

	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductSlugTaken    = errors.New("product slug already taken")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// sellerChain preloads the seller with their full location for rendering
// seller summaries without extra queries.
const sellerChain = "Seller." + locationChain

// ProductFilter narrows public listings.
type ProductFilter struct {
	CategorySlug    string
	SubcategorySlug string
	SellerID        string
	Limit           int
	Offset          int
}

type ProductRepository interface {
	// Categories
	ListCategories() ([]models.Category, error)
	FindSubcategoryBySlug(slug string) (*models.Subcategory, error)

	// Products
	Create(product *models.ProductArticle) error
	FindBySlug(slug string) (*models.ProductArticle, error)
	ListListable(filter ProductFilter) ([]models.ProductArticle, int64, error)
	ListBySeller(sellerID string, includeHidden bool) ([]models.ProductArticle, error)

	// Recommendation queries. Both re-derive the listability filter on
	// every call so nothing hidden or banned after the fact can surface.
	FindSimilar(subcategoryID, excludeProductID, excludeSellerID string, limit int) ([]models.ProductArticle, error)
	FindFromSameSeller(sellerID, excludeProductID string, limit int) ([]models.ProductArticle, error)

	// Visibility transitions
	SetHidden(productID string, hidden bool) error
	SetOutOfStock(productID string, outOfStock bool) error
	// SetBanned is one-way: moderation bans, nothing unbans.
	SetBanned(productID string) error

	Update(product *models.ProductArticle) error
	Delete(productID string) error
}

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// listable restricts a query to publicly visible products.
func listable(db *gorm.DB) *gorm.DB {
	return db.Where("is_banned = ? AND is_hidden = ?", false, false)
}

// Categories

func (r *ProductRepositoryImpl) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	// Position is the explicit display order for catalog pages.
	err := r.db.Preload("Subcategories").Order("position, name").Find(&categories).Error
	return categories, err
}

func (r *ProductRepositoryImpl) FindSubcategoryBySlug(slug string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.Preload("Category").First(&subcategory, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

// Products

func (r *ProductRepositoryImpl) Create(product *models.ProductArticle) error {
	err := r.db.Create(product).Error
	if err != nil && isDuplicateKeyError(err) {
		return ErrProductSlugTaken
	}
	return err
}

func (r *ProductRepositoryImpl) FindBySlug(slug string) (*models.ProductArticle, error) {
	var product models.ProductArticle
	err := r.db.Preload(sellerChain).Preload("Subcategory").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) ListListable(filter ProductFilter) ([]models.ProductArticle, int64, error) {
	query := listable(r.db.Model(&models.ProductArticle{}))

	if filter.SubcategorySlug != "" {
		query = query.
			Joins("JOIN subcategories ON subcategories.id = product_articles.subcategory_id").
			Where("subcategories.slug = ?", filter.SubcategorySlug)
	} else if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN subcategories ON subcategories.id = product_articles.subcategory_id").
			Joins("JOIN categories ON categories.id = subcategories.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.SellerID != "" {
		query = query.Where("product_articles.seller_id = ?", filter.SellerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var products []models.ProductArticle
	err := query.Preload(sellerChain).Preload("Subcategory").
		Order("product_articles.created_at DESC, product_articles.id").
		Limit(limit).Offset(filter.Offset).
		Find(&products).Error

	return products, total, err
}

// ListBySeller returns a seller's products. With includeHidden the
// seller sees their own hidden and out-of-stock listings, but banned
// products stay excluded for everyone.
func (r *ProductRepositoryImpl) ListBySeller(sellerID string, includeHidden bool) ([]models.ProductArticle, error) {
	query := r.db.Where("seller_id = ?", sellerID).Where("is_banned = ?", false)
	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}

	var products []models.ProductArticle
	err := query.Preload("Subcategory").Preload(sellerChain).
		Order("created_at DESC, id").
		Find(&products).Error
	return products, err
}

// FindSimilar implements "you may also like": listable products in the
// same subcategory from other sellers. Ordering is newest first with id
// as the final tie-break, so results are deterministic.
func (r *ProductRepositoryImpl) FindSimilar(subcategoryID, excludeProductID, excludeSellerID string, limit int) ([]models.ProductArticle, error) {
	if limit <= 0 {
		limit = 6
	}

	var products []models.ProductArticle
	err := listable(r.db).
		Where("subcategory_id = ?", subcategoryID).
		Where("id != ?", excludeProductID).
		Where("seller_id != ?", excludeSellerID).
		Preload(sellerChain).Preload("Subcategory").
		Order("created_at DESC, id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindFromSameSeller implements "more from this farm": the seller's
// other listable products, newest first.
func (r *ProductRepositoryImpl) FindFromSameSeller(sellerID, excludeProductID string, limit int) ([]models.ProductArticle, error) {
	if limit <= 0 {
		limit = 6
	}

	var products []models.ProductArticle
	err := listable(r.db).
		Where("seller_id = ?", sellerID).
		Where("id != ?", excludeProductID).
		Preload(sellerChain).Preload("Subcategory").
		Order("created_at DESC, id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Visibility transitions

func (r *ProductRepositoryImpl) SetHidden(productID string, hidden bool) error {
	return r.setFlag(productID, "is_hidden", hidden)
}

func (r *ProductRepositoryImpl) SetOutOfStock(productID string, outOfStock bool) error {
	return r.setFlag(productID, "is_out_of_stock", outOfStock)
}

func (r *ProductRepositoryImpl) SetBanned(productID string) error {
	return r.setFlag(productID, "is_banned", true)
}

func (r *ProductRepositoryImpl) setFlag(productID, column string, value bool) error {
	result := r.db.Model(&models.ProductArticle{}).
		Where("id = ?", productID).
		Update(column, value)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Update(product *models.ProductArticle) error {
	result := r.db.Model(product).Updates(map[string]interface{}{
		"title":          product.Title,
		"description":    product.Description,
		"image_path":     product.ImagePath,
		"price":          product.Price,
		"allow_pickup":   product.AllowPickup,
		"allow_delivery": product.AllowDelivery,
		"subcategory_id": product.SubcategoryID,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(productID string) error {
	result := r.db.Where("id = ?", productID).Delete(&models.ProductArticle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

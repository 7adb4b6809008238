package repositories

import (
	"errors"

	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBlogArticleNotFound  = errors.New("blog article not found")
	ErrBlogCategoryNotFound = errors.New("blog category not found")
)

type BlogFilter struct {
	CategorySlug string
	Limit        int
	Offset       int
}

type BlogRepository interface {
	ListCategories() ([]models.BlogCategory, error)
	FindCategoryBySlug(slug string) (*models.BlogCategory, error)
	List(filter BlogFilter) ([]models.BlogArticle, int64, error)
	FindBySlug(slug string) (*models.BlogArticle, error)
	Create(article *models.BlogArticle) error
	Update(article *models.BlogArticle) error
	Delete(articleID string) error
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) ListCategories() ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *BlogRepositoryImpl) FindCategoryBySlug(slug string) (*models.BlogCategory, error) {
	var category models.BlogCategory
	err := r.db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *BlogRepositoryImpl) List(filter BlogFilter) ([]models.BlogArticle, int64, error) {
	query := r.db.Model(&models.BlogArticle{})

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN blog_categories ON blog_categories.id = blog_articles.category_id").
			Where("blog_categories.slug = ?", filter.CategorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var articles []models.BlogArticle
	err := query.Preload("Author").Preload("Category").
		Order("blog_articles.created_at DESC, blog_articles.id").
		Limit(limit).Offset(filter.Offset).
		Find(&articles).Error
	return articles, total, err
}

func (r *BlogRepositoryImpl) FindBySlug(slug string) (*models.BlogArticle, error) {
	var article models.BlogArticle
	err := r.db.Preload("Author").Preload("Category").
		First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *BlogRepositoryImpl) Create(article *models.BlogArticle) error {
	return r.db.Create(article).Error
}

func (r *BlogRepositoryImpl) Update(article *models.BlogArticle) error {
	result := r.db.Model(article).Updates(map[string]interface{}{
		"title":       article.Title,
		"body":        article.Body,
		"image_path":  article.ImagePath,
		"category_id": article.CategoryID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogArticleNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) Delete(articleID string) error {
	result := r.db.Where("id = ?", articleID).Delete(&models.BlogArticle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogArticleNotFound
	}
	return nil
}

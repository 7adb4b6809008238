package services

import (
	"context"
	"errors"
	"time"

	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/storage"
	"eggslist_backend/pkg/apperrors"
)

type BlogService interface {
	ListCategories(ctx context.Context) ([]dto.BlogCategoryView, error)
	List(ctx context.Context, filter repositories.BlogFilter) (*dto.PagedBlogArticles, error)
	GetArticle(ctx context.Context, slug string) (*dto.BlogArticleView, error)
}

type BlogServiceImpl struct {
	blog  repositories.BlogRepository
	store storage.Storage
}

func NewBlogService(blog repositories.BlogRepository, store storage.Storage) BlogService {
	return &BlogServiceImpl{blog: blog, store: store}
}

func (s *BlogServiceImpl) ListCategories(ctx context.Context) ([]dto.BlogCategoryView, error) {
	categories, err := s.blog.ListCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.BlogCategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, dto.BlogCategoryView{Name: category.Name, Slug: category.Slug})
	}
	return views, nil
}

func (s *BlogServiceImpl) List(ctx context.Context, filter repositories.BlogFilter) (*dto.PagedBlogArticles, error) {
	articles, total, err := s.blog.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.BlogArticleSummary, 0, len(articles))
	for i := range articles {
		summaries = append(summaries, s.summary(ctx, &articles[i]))
	}
	return &dto.PagedBlogArticles{Articles: summaries, Total: total}, nil
}

func (s *BlogServiceImpl) GetArticle(ctx context.Context, slug string) (*dto.BlogArticleView, error) {
	article, err := s.blog.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogArticleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.BlogArticleView{
		BlogArticleSummary: s.summary(ctx, article),
		Body:               article.Body,
	}, nil
}

func (s *BlogServiceImpl) summary(ctx context.Context, article *models.BlogArticle) dto.BlogArticleSummary {
	summary := dto.BlogArticleSummary{
		Title:     article.Title,
		Slug:      article.Slug,
		CreatedAt: article.CreatedAt.Format(time.RFC3339),
	}
	if article.ImagePath != "" {
		if url, err := s.store.GetURL(ctx, article.ImagePath); err == nil {
			summary.ImageURL = url
		}
	}
	if article.Category != nil {
		summary.Category = article.Category.Name
	}
	if article.Author != nil {
		summary.Author = article.Author.DisplayName()
	}
	return summary
}

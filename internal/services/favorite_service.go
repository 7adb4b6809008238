package services

import (
	"context"
	"errors"

	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/storage"
	"eggslist_backend/pkg/apperrors"
)

type FavoriteService interface {
	// Follow adds the seller to the viewer's favorite farms. Following a
	// seller twice is a silent success.
	Follow(ctx context.Context, userID, sellerID string) error
	Unfollow(ctx context.Context, userID, sellerID string) error
	ListFollowing(ctx context.Context, userID string) ([]dto.PersonalizedSeller, error)
}

type FavoriteServiceImpl struct {
	favorites repositories.FavoriteRepository
	users     repositories.UserRepository
	personalizer
}

func NewFavoriteService(
	favorites repositories.FavoriteRepository,
	users repositories.UserRepository,
	store storage.Storage,
) FavoriteService {
	return &FavoriteServiceImpl{
		favorites:    favorites,
		users:        users,
		personalizer: personalizer{favorites: favorites, store: store},
	}
}

func (s *FavoriteServiceImpl) Follow(ctx context.Context, userID, sellerID string) error {
	// The seller must exist; the follow edge has no meaning otherwise.
	if _, err := s.users.FindByID(sellerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.favorites.Follow(userID, sellerID); err != nil {
		if errors.Is(err, repositories.ErrCannotFollowSelf) {
			return apperrors.ErrInvalidOperation("favorites", "You cannot follow your own farm")
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "farm followed", "user_id", userID, "seller_id", sellerID)
	return nil
}

// Unfollow removes the follow edge. Removing an absent edge succeeds.
func (s *FavoriteServiceImpl) Unfollow(ctx context.Context, userID, sellerID string) error {
	if err := s.favorites.Unfollow(userID, sellerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) ListFollowing(ctx context.Context, userID string) ([]dto.PersonalizedSeller, error) {
	sellers, err := s.favorites.ListFollowing(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refs := make([]*models.User, len(sellers))
	for i := range sellers {
		refs[i] = &sellers[i]
	}

	// Everything in the viewer's own list is by definition a favorite;
	// the bulk merge still runs so the shape matches every other page.
	viewer := dto.ViewerContext{UserID: userID}
	return s.sellerCards(ctx, viewer, refs), nil
}

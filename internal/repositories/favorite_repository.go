package repositories

import (
	"errors"

	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCannotFollowSelf = errors.New("cannot follow yourself")

// FavoriteRepository maintains the directed buyer -> seller follow graph.
type FavoriteRepository interface {
	// Follow inserts the edge. Following an already-followed seller is a
	// silent success: the unique constraint serializes concurrent
	// inserts and the losing one reads as "already following".
	Follow(userID, sellerID string) error

	// Unfollow removes the edge; absent edges are a no-op.
	Unfollow(userID, sellerID string) error

	// ListFollowing returns followed sellers, newest follow first.
	ListFollowing(userID string) ([]models.User, error)

	// IsFollowing is a single-pair membership check.
	IsFollowing(userID, sellerID string) (bool, error)

	// FollowedSellerIDs returns, in one query, which of sellerIDs the
	// user follows. This is the bulk contract used per listing page.
	FollowedSellerIDs(userID string, sellerIDs []string) (map[string]bool, error)
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Follow(userID, sellerID string) error {
	if userID == sellerID {
		return ErrCannotFollowSelf
	}

	edge := &models.UserFavoriteFarm{
		UserID:          userID,
		FollowingUserID: sellerID,
	}

	if err := r.db.Create(edge).Error; err != nil {
		if isDuplicateKeyError(err) {
			// Already following.
			return nil
		}
		return err
	}
	return nil
}

func (r *FavoriteRepositoryImpl) Unfollow(userID, sellerID string) error {
	return r.db.
		Where("user_id = ? AND following_user_id = ?", userID, sellerID).
		Delete(&models.UserFavoriteFarm{}).Error
}

func (r *FavoriteRepositoryImpl) ListFollowing(userID string) ([]models.User, error) {
	var edges []models.UserFavoriteFarm
	err := r.db.
		Preload("FollowingUser." + locationChain).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	sellers := make([]models.User, 0, len(edges))
	for _, edge := range edges {
		if edge.FollowingUser != nil {
			sellers = append(sellers, *edge.FollowingUser)
		}
	}
	return sellers, nil
}

func (r *FavoriteRepositoryImpl) IsFollowing(userID, sellerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserFavoriteFarm{}).
		Where("user_id = ? AND following_user_id = ?", userID, sellerID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) FollowedSellerIDs(userID string, sellerIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(sellerIDs))
	if userID == "" || len(sellerIDs) == 0 {
		return result, nil
	}

	var followed []string
	err := r.db.Model(&models.UserFavoriteFarm{}).
		Where("user_id = ? AND following_user_id IN ?", userID, sellerIDs).
		Pluck("following_user_id", &followed).Error
	if err != nil {
		return nil, err
	}

	for _, id := range followed {
		result[id] = true
	}
	return result, nil
}

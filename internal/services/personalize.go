package services

import (
	"context"

	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/storage"
)

// personalizer merges viewer-dependent state (the favorite flag) into
// otherwise shared seller summaries. The merge is a single bulk lookup
// whatever the page size, so personalization cost does not grow with
// the number of sellers on the page.
type personalizer struct {
	favorites repositories.FavoriteRepository
	store     storage.Storage
}

// sellerCards builds personalized seller summaries for the given users.
// For anonymous viewers every favorite flag is false and no lookup is
// made at all.
func (p *personalizer) sellerCards(ctx context.Context, viewer dto.ViewerContext, sellers []*models.User) []dto.PersonalizedSeller {
	cards := make([]dto.PersonalizedSeller, 0, len(sellers))
	for _, seller := range sellers {
		if seller == nil {
			cards = append(cards, dto.PersonalizedSeller{})
			continue
		}
		cards = append(cards, dto.PersonalizedSeller{
			SellerSummary: dto.NewSellerSummary(seller, p.avatarURL(ctx, seller)),
		})
	}

	if !viewer.IsAuthenticated() {
		return cards
	}

	ids := make([]string, 0, len(sellers))
	for _, seller := range sellers {
		if seller != nil {
			ids = append(ids, seller.ID)
		}
	}

	followed, err := p.favorites.FollowedSellerIDs(viewer.UserID, ids)
	if err != nil {
		// Personalization is best-effort: the page still renders, just
		// without favorite flags.
		logger.CtxWarn(ctx, "favorite lookup failed", "error", err)
		return cards
	}

	for i := range cards {
		cards[i].IsFavorite = followed[cards[i].ID]
	}
	return cards
}

func (p *personalizer) avatarURL(ctx context.Context, user *models.User) string {
	if user.AvatarPath == "" {
		return ""
	}
	url, err := p.store.GetURL(ctx, user.AvatarPath)
	if err != nil {
		return ""
	}
	return url
}

package services

import (
	"context"
	"testing"

	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type followGraph struct {
	repositories.FavoriteRepository

	edges map[string]map[string]bool
}

func newFollowGraph() *followGraph {
	return &followGraph{edges: map[string]map[string]bool{}}
}

func (g *followGraph) Follow(userID, sellerID string) error {
	if userID == sellerID {
		return repositories.ErrCannotFollowSelf
	}
	if g.edges[userID] == nil {
		g.edges[userID] = map[string]bool{}
	}
	g.edges[userID][sellerID] = true
	return nil
}

func (g *followGraph) Unfollow(userID, sellerID string) error {
	delete(g.edges[userID], sellerID)
	return nil
}

func (g *followGraph) ListFollowing(userID string) ([]models.User, error) {
	var sellers []models.User
	for sellerID := range g.edges[userID] {
		sellers = append(sellers, *newTestUser(sellerID, sellerID+"@example.com"))
	}
	return sellers, nil
}

func (g *followGraph) FollowedSellerIDs(userID string, sellerIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(sellerIDs))
	for _, id := range sellerIDs {
		if g.edges[userID][id] {
			result[id] = true
		}
	}
	return result, nil
}

func TestFollowUnknownSeller(t *testing.T) {
	svc := NewFavoriteService(newFollowGraph(), &stubUsers{byID: map[string]*models.User{}}, stubStorage{})

	err := svc.Follow(context.Background(), "buyer-1", "ghost")
	requireHTTPCode(t, err, 404)
}

func TestFollowSelfIsRejected(t *testing.T) {
	user := newTestUser("u-1", "me@example.com")
	svc := NewFavoriteService(newFollowGraph(), &stubUsers{byID: map[string]*models.User{"u-1": user}}, stubStorage{})

	err := svc.Follow(context.Background(), "u-1", "u-1")
	requireHTTPCode(t, err, 400)
}

func TestListFollowingMarksEveryEntryFavorite(t *testing.T) {
	graph := newFollowGraph()
	seller := newTestUser("seller-1", "farm@example.com")
	users := &stubUsers{byID: map[string]*models.User{"seller-1": seller}}
	svc := NewFavoriteService(graph, users, stubStorage{})

	require.NoError(t, svc.Follow(context.Background(), "buyer-1", "seller-1"))

	following, err := svc.ListFollowing(context.Background(), "buyer-1")
	require.NoError(t, err)

	require.Len(t, following, 1)
	assert.True(t, following[0].IsFavorite)
	assert.Equal(t, "seller-1", following[0].ID)
}

func TestUnfollowAbsentEdgeSucceeds(t *testing.T) {
	svc := NewFavoriteService(newFollowGraph(), &stubUsers{byID: map[string]*models.User{}}, stubStorage{})

	assert.NoError(t, svc.Unfollow(context.Background(), "buyer-1", "seller-1"))
}

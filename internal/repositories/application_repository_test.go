package repositories

import (
	"testing"

	"eggslist_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func submitApplication(t *testing.T, db *gorm.DB, userID string) *models.SellerApplication {
	t.Helper()

	application := &models.SellerApplication{
		UserID: userID,
		Text:   "We raise pastured hens on five acres.",
		Status: models.ApplicationStatusPending,
	}
	require.NoError(t, db.Create(application).Error)
	return application
}

func TestApproveMovesSellerStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	users := NewUserRepository(db)

	user := createUser(t, db, "farm@example.com")
	require.NoError(t, users.SetSellerStatus(user.ID, models.SellerStatusPending))
	application := submitApplication(t, db, user.ID)

	require.NoError(t, repo.Approve(application.ID))

	loaded, err := repo.FindByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, loaded.Status)

	seller, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusVerified, seller.SellerStatus)
}

func TestRejectReturnsUserToNone(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	users := NewUserRepository(db)

	user := createUser(t, db, "farm@example.com")
	require.NoError(t, users.SetSellerStatus(user.ID, models.SellerStatusPending))
	application := submitApplication(t, db, user.ID)

	require.NoError(t, repo.Reject(application.ID))

	seller, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusNone, seller.SellerStatus)
}

func TestResolveTwice(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	user := createUser(t, db, "farm@example.com")
	application := submitApplication(t, db, user.ID)

	require.NoError(t, repo.Approve(application.ID))

	err := repo.Reject(application.ID)
	assert.ErrorIs(t, err, ErrApplicationAlreadyResolved)
}

func TestHasPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	user := createUser(t, db, "farm@example.com")

	pending, err := repo.HasPending(user.ID)
	require.NoError(t, err)
	assert.False(t, pending)

	application := submitApplication(t, db, user.ID)

	pending, err = repo.HasPending(user.ID)
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, repo.Approve(application.ID))

	pending, err = repo.HasPending(user.ID)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestApproveUnknownApplication(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	err := repo.Approve("no-such-id")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

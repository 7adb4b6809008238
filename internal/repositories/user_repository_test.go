package repositories

import (
	"testing"
	"time"

	"eggslist_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createUser(t, db, "taken@example.com")

	err := repo.Create(&models.User{
		Email:        "taken@example.com",
		Username:     "someone-else",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestVerifyEmailIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "new@example.com")
	require.NoError(t, db.Model(user).Update("verification_token", "tok-123").Error)

	require.NoError(t, repo.VerifyEmail(user.Email))
	// Second verification is a no-op, not an error.
	require.NoError(t, repo.VerifyEmail(user.Email))

	loaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmailVerified)
	assert.Empty(t, loaded.VerificationToken)
}

func TestVerificationTokenSingleUse(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "new@example.com")
	require.NoError(t, db.Model(user).Update("verification_token", "tok-123").Error)

	found, err := repo.FindByVerificationToken("tok-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, repo.VerifyEmail(user.Email))

	// The consumed token no longer resolves, and the cleared token must
	// not make every user matchable by "".
	_, err = repo.FindByVerificationToken("tok-123")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByVerificationToken("")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "a@example.com")
	require.NoError(t, repo.SetResetToken(user.ID, "reset-1", time.Now().Add(time.Hour)))

	found, err := repo.FindByResetToken("reset-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// Setting a new password consumes the token.
	require.NoError(t, repo.SetPasswordHash(user.ID, "new-hash"))

	_, err = repo.FindByResetToken("reset-1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	loaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", loaded.PasswordHash)
}

func TestExpiredResetToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "a@example.com")
	require.NoError(t, repo.SetResetToken(user.ID, "reset-1", time.Now().Add(-time.Minute)))

	_, err := repo.FindByResetToken("reset-1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateLocation(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	zip := createPlaceChain(t, db, "Oregon", "Portland", "97202")
	user := createUser(t, db, "a@example.com")

	require.NoError(t, repo.UpdateLocation(user.ID, zip.ID))

	loaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ZipCode)
	assert.Equal(t, "97202", loaded.ZipCode.Name)
	require.NotNil(t, loaded.ZipCode.City)
	assert.Equal(t, "Portland", loaded.ZipCode.City.Name)
}

func TestSetSellerStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "a@example.com")
	require.NoError(t, repo.SetSellerStatus(user.ID, models.SellerStatusVerified))

	loaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SellerStatusVerified, loaded.SellerStatus)
	assert.True(t, loaded.IsVerifiedSeller())
}

func TestFindByIDsBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	a := createUser(t, db, "a@example.com")
	b := createUser(t, db, "b@example.com")
	createUser(t, db, "c@example.com")

	users, err := repo.FindByIDs([]string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

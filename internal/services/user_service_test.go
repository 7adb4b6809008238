package services

import (
	"context"
	"testing"
	"time"

	"eggslist_backend/internal/auth"
	"eggslist_backend/internal/email"
	"eggslist_backend/internal/imageprocessor"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	appvalidator "eggslist_backend/internal/validator"
	"eggslist_backend/internal/workers"
	"eggslist_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUsers struct {
	repositories.UserRepository

	byEmail map[string]*models.User
	created []*models.User
}

func (s *recordingUsers) Create(user *models.User) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = "u-new"
	s.byEmail[user.Email] = user
	s.created = append(s.created, user)
	return nil
}

func (s *recordingUsers) FindByEmail(email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *recordingUsers) SetResetToken(userID, token string, exp time.Time) error {
	return nil
}

func newUserFixture(users *recordingUsers) UserService {
	auth.InitJWT("test-secret")
	return NewUserService(
		users,
		&stubLocations{},
		email.NewNoopProvider(),
		stubStorage{},
		imageprocessor.NewProcessor(0),
		workers.NewOutbox(8),
		appvalidator.New(),
		time.Hour,
	)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	resp, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Email:    "  Farmer@Example.COM ",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.Equal(t, "farmer@example.com", created.Email)
	// No username given: the normalized email stands in.
	assert.Equal(t, "farmer@example.com", created.Username)
	assert.Equal(t, models.SellerStatusNone, created.SellerStatus)
	assert.NotEmpty(t, created.VerificationToken)
	assert.NotEmpty(t, resp.Token)

	// Stored hash must verify the original password, never store it.
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret1", created.PasswordHash))
}

func TestRegisterDuplicateEmailDiffersOnlyByCase(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Email: "farmer@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.CreateUserRequest{
		Email: "FARMER@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterShortPassword(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Email: "farmer@example.com", Password: "short",
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Email: "farmer@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "farmer@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginNormalizesEmail(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Email: "farmer@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: " FARMER@example.com ", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", resp.User.Email)
}

func TestPasswordResetRequestNeverProbesAccounts(t *testing.T) {
	users := &recordingUsers{byEmail: map[string]*models.User{}}
	svc := newUserFixture(users)

	// Unknown address: silent success, indistinguishable from a hit.
	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
}

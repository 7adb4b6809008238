package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"eggslist_backend/internal/auth"
	"eggslist_backend/internal/email"
	"eggslist_backend/internal/imageprocessor"
	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/storage"
	"eggslist_backend/internal/utils"
	appvalidator "eggslist_backend/internal/validator"
	"eggslist_backend/internal/workers"
	"eggslist_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const resetTokenTTL = 2 * time.Hour

type UserService interface {
	Register(ctx context.Context, req dto.CreateUserRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserProfile, error)
	UpdateLocation(ctx context.Context, userID, zipSlug string) (*dto.UserProfile, error)

	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, userID string) error

	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	UploadAvatar(ctx context.Context, userID string, file io.Reader) (*dto.UserProfile, error)
	AvatarURL(ctx context.Context, user *models.User) string
}

type UserServiceImpl struct {
	users     repositories.UserRepository
	locations repositories.LocationRepository
	mailer    email.Provider
	store     storage.Storage
	images    *imageprocessor.Processor
	outbox    *workers.Outbox
	validator *appvalidator.Validator
	jwtTTL    time.Duration
}

func NewUserService(
	users repositories.UserRepository,
	locations repositories.LocationRepository,
	mailer email.Provider,
	store storage.Storage,
	images *imageprocessor.Processor,
	outbox *workers.Outbox,
	validator *appvalidator.Validator,
	jwtTTL time.Duration,
) UserService {
	return &UserServiceImpl{
		users:     users,
		locations: locations,
		mailer:    mailer,
		store:     store,
		images:    images,
		outbox:    outbox,
		validator: validator,
		jwtTTL:    jwtTTL,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.CreateUserRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	normalized := utils.NormalizeEmail(req.Email)
	username := req.Username
	if username == "" {
		// Accounts created without a username get the email as one.
		username = normalized
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             normalized,
		Username:          username,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PasswordHash:      hash,
		SellerStatus:      models.SellerStatusNone,
		VerificationToken: uuid.NewString(),
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.enqueueVerificationEmail(user.Email, user.VerificationToken)

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)

	return s.authResponse(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	user, err := s.users.FindByEmail(utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(ctx, user)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserProfile(user, s.AvatarURL(ctx, user))
	return &profile, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, validationToAppError(err)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(ctx, userID)
}

// UpdateLocation pins the user's permanent location to a known zip code.
// Unknown slugs are a 404, never an implicit insert.
func (s *UserServiceImpl) UpdateLocation(ctx context.Context, userID, zipSlug string) (*dto.UserProfile, error) {
	zip, err := s.locations.FindZipBySlug(zipSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrZipCodeNotFound) {
			return nil, apperrors.ErrZipCodeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.users.UpdateLocation(userID, zip.ID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(ctx, userID)
}

// VerifyEmail consumes a verification token. Verifying an already
// verified account is a silent success.
func (s *UserServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.users.VerifyEmail(user.Email); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)
	return nil
}

func (s *UserServiceImpl) ResendVerification(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return nil
	}

	if user.VerificationToken == "" {
		user.VerificationToken = uuid.NewString()
		if err := s.users.Update(user); err != nil {
			return apperrors.InternalError(err)
		}
	}

	s.enqueueVerificationEmail(user.Email, user.VerificationToken)
	return nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return validationToAppError(err)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.users.SetPasswordHash(userID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password changed", "user_id", userID)
	return nil
}

// RequestPasswordReset issues a reset token. Unknown addresses succeed
// silently so the endpoint cannot be used to probe for accounts.
func (s *UserServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(utils.NormalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	if err := s.users.SetResetToken(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return apperrors.InternalError(err)
	}

	to := user.Email
	s.outbox.Enqueue(workers.Job{
		Name: "email:password_reset",
		Run: func(ctx context.Context) error {
			return s.mailer.SendPasswordReset(to, token)
		},
	})

	return nil
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return validationToAppError(err)
	}

	user, err := s.users.FindByResetToken(req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// SetPasswordHash also clears the reset token, so a token is single
	// use.
	if err := s.users.SetPasswordHash(user.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset", "user_id", user.ID)
	return nil
}

// UploadAvatar validates the upload, records the avatar path and hands
// the resize plus storage write to the outbox. The square crop keeps
// seller cards uniform.
func (s *UserServiceImpl) UploadAvatar(ctx context.Context, userID string, file io.Reader) (*dto.UserProfile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !imageprocessor.IsValidImage(bytes.NewReader(raw)) {
		return nil, apperrors.NewBadRequestError("Unsupported or corrupt image")
	}

	path := fmt.Sprintf("avatars/%s.jpg", userID)
	user.AvatarPath = path
	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	store := s.store
	images := s.images
	s.outbox.Enqueue(workers.Job{
		Name: "image:avatar",
		Run: func(ctx context.Context) error {
			processed, err := images.ProcessAvatar(bytes.NewReader(raw))
			if err != nil {
				return err
			}
			return store.Save(ctx, path, processed, "image/jpeg")
		},
	})

	return s.GetProfile(ctx, userID)
}

// AvatarURL resolves the stored avatar path to a public URL, or ""
// when the user has no avatar.
func (s *UserServiceImpl) AvatarURL(ctx context.Context, user *models.User) string {
	if user == nil || user.AvatarPath == "" {
		return ""
	}
	url, err := s.store.GetURL(ctx, user.AvatarPath)
	if err != nil {
		logger.CtxWarn(ctx, "avatar url resolution failed", "user_id", user.ID, "error", err)
		return ""
	}
	return url
}

func (s *UserServiceImpl) authResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserProfile(user, s.AvatarURL(ctx, user)),
	}, nil
}

func (s *UserServiceImpl) enqueueVerificationEmail(to, token string) {
	s.outbox.Enqueue(workers.Job{
		Name: "email:verification",
		Run: func(ctx context.Context) error {
			return s.mailer.SendVerification(to, token)
		},
	})
}

// validationToAppError maps validator failures onto the shared error
// envelope.
func validationToAppError(err error) error {
	var ve *appvalidator.ValidationError
	if errors.As(err, &ve) {
		return apperrors.ValidationError(ve.Errors)
	}
	return apperrors.InternalError(err)
}

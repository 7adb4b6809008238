package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	appvalidator "eggslist_backend/internal/validator"
	"eggslist_backend/pkg/apperrors"
)

type SellerService interface {
	// Apply submits a verification application and moves the user to
	// seller_status=pending.
	Apply(ctx context.Context, userID string, req dto.SellerApplicationRequest) (*dto.SellerApplicationView, error)
	ListApplications(ctx context.Context, userID string) ([]dto.SellerApplicationView, error)

	// Moderation operations.
	Approve(ctx context.Context, applicationID string) error
	Reject(ctx context.Context, applicationID string) error
}

type SellerServiceImpl struct {
	users        repositories.UserRepository
	applications repositories.ApplicationRepository
	validator    *appvalidator.Validator
}

func NewSellerService(
	users repositories.UserRepository,
	applications repositories.ApplicationRepository,
	validator *appvalidator.Validator,
) SellerService {
	return &SellerServiceImpl{
		users:        users,
		applications: applications,
		validator:    validator,
	}
}

func (s *SellerServiceImpl) Apply(ctx context.Context, userID string, req dto.SellerApplicationRequest) (*dto.SellerApplicationView, error) {
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

	// Status legality: none -> pending only. Verified sellers have
	// nothing to apply for, and a pending application blocks a second.
	switch user.SellerStatus {
	case models.SellerStatusVerified:
		return nil, apperrors.ErrAlreadyVerifiedSeller
	case models.SellerStatusPending:
		return nil, apperrors.ErrApplicationPending
	}

	if pending, err := s.applications.HasPending(userID); err != nil {
		return nil, apperrors.InternalError(err)
	} else if pending {
		return nil, apperrors.ErrApplicationPending
	}

	application := &models.SellerApplication{
		UserID: userID,
		Text:   req.Text,
		Status: models.ApplicationStatusPending,
	}
	if len(req.Answers) > 0 {
		raw, err := json.Marshal(req.Answers)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		application.Answers = raw
	}

	if err := s.applications.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.users.SetSellerStatus(userID, models.SellerStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "seller application submitted",
		"user_id", userID, "application_id", application.ID)

	view := newApplicationView(application)
	return &view, nil
}

func (s *SellerServiceImpl) ListApplications(ctx context.Context, userID string) ([]dto.SellerApplicationView, error) {
	applications, err := s.applications.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.SellerApplicationView, 0, len(applications))
	for i := range applications {
		views = append(views, newApplicationView(&applications[i]))
	}
	return views, nil
}

func (s *SellerServiceImpl) Approve(ctx context.Context, applicationID string) error {
	if err := s.applications.Approve(applicationID); err != nil {
		return resolveApplicationError(err)
	}
	logger.CtxInfo(ctx, "seller application approved", "application_id", applicationID)
	return nil
}

func (s *SellerServiceImpl) Reject(ctx context.Context, applicationID string) error {
	if err := s.applications.Reject(applicationID); err != nil {
		return resolveApplicationError(err)
	}
	logger.CtxInfo(ctx, "seller application rejected", "application_id", applicationID)
	return nil
}

func resolveApplicationError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrNotFound(err)
	case errors.Is(err, repositories.ErrApplicationAlreadyResolved):
		return apperrors.ErrInvalidStatus("sellers", "Application already resolved")
	default:
		return apperrors.InternalError(err)
	}
}

func newApplicationView(application *models.SellerApplication) dto.SellerApplicationView {
	return dto.SellerApplicationView{
		ID:        application.ID,
		Text:      application.Text,
		Status:    application.Status,
		CreatedAt: application.CreatedAt.Format(time.RFC3339),
	}
}

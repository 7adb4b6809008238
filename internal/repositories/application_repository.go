package repositories

import (
	"errors"

	"eggslist_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("seller application not found")

type ApplicationRepository interface {
	Create(application *models.SellerApplication) error
	FindByID(id string) (*models.SellerApplication, error)
	ListByUser(userID string) ([]models.SellerApplication, error)
	HasPending(userID string) (bool, error)

	// Approve and Reject resolve an application and move the applicant's
	// seller status in the same transaction, so the two rows can never
	// disagree.
	Approve(applicationID string) error
	Reject(applicationID string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.SellerApplication) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.SellerApplication, error) {
	var application models.SellerApplication
	err := r.db.Preload("User").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(userID string) ([]models.SellerApplication, error) {
	var applications []models.SellerApplication
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) HasPending(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SellerApplication{}).
		Where("user_id = ? AND status = ?", userID, models.ApplicationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) Approve(applicationID string) error {
	return r.resolve(applicationID, models.ApplicationStatusApproved, models.SellerStatusVerified)
}

func (r *ApplicationRepositoryImpl) Reject(applicationID string) error {
	return r.resolve(applicationID, models.ApplicationStatusRejected, models.SellerStatusNone)
}

func (r *ApplicationRepositoryImpl) resolve(applicationID string, appStatus models.ApplicationStatus, sellerStatus models.SellerStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var application models.SellerApplication
		err := tx.First(&application, "id = ?", applicationID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		if application.Status != models.ApplicationStatusPending {
			return ErrApplicationAlreadyResolved
		}

		err = tx.Model(&application).Update("status", appStatus).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", application.UserID).
			Update("seller_status", sellerStatus).Error
	})
}

var ErrApplicationAlreadyResolved = errors.New("seller application already resolved")

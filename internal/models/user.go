package models

import "time"

type User struct {
	BaseModel
	Email           string       `gorm:"uniqueIndex;not null"`
	Username        string       `gorm:"not null"`
	FirstName       string
	LastName        string
	PasswordHash    string       `gorm:"not null"`
	PhoneNumber     string
	Bio             string       `gorm:"size:1024"`
	AvatarPath      string
	IsEmailVerified bool         `gorm:"default:false"`
	SellerStatus    SellerStatus `gorm:"type:varchar(20);not null;default:'none'"`

	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Location
	ZipCodeID *string          `gorm:"index"`
	ZipCode   *LocationZipCode `gorm:"foreignKey:ZipCodeID"`

	// Relations
	Applications []SellerApplication `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// DisplayName returns the name shown on seller summaries.
func (u *User) DisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// IsVerifiedSeller reports whether the user passed seller verification.
func (u *User) IsVerifiedSeller() bool {
	return u.SellerStatus == SellerStatusVerified
}

// HasCompleteSellerProfile reports whether the user can list products:
// a display name and a location are required.
func (u *User) HasCompleteSellerProfile() bool {
	return (u.FirstName != "" || u.LastName != "") && u.ZipCodeID != nil
}

package dto

import (
	"eggslist_backend/internal/models"
)

// CreateUserRequest is the sign-up payload. Username defaults to the
// normalized email when omitted.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Username  string `json:"username" validate:"omitempty,min=2,max=64"`
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	LastName  string `json:"last_name" validate:"omitempty,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=2,max=64"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=64"`
	LastName    *string `json:"last_name" validate:"omitempty,max=64"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	Bio         *string `json:"bio" validate:"omitempty,max=1024"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UserProfile is the signed-in user's own view of their account.
type UserProfile struct {
	ID              string              `json:"id"`
	Email           string              `json:"email"`
	Username        string              `json:"username"`
	FirstName       string              `json:"first_name,omitempty"`
	LastName        string              `json:"last_name,omitempty"`
	PhoneNumber     string              `json:"phone_number,omitempty"`
	Bio             string              `json:"bio,omitempty"`
	AvatarURL       string              `json:"avatar_url,omitempty"`
	IsEmailVerified bool                `json:"is_email_verified"`
	SellerStatus    models.SellerStatus `json:"seller_status"`
	Location        *Location           `json:"location,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// NewUserProfile maps a loaded user row to its own-profile shape.
func NewUserProfile(user *models.User, avatarURL string) UserProfile {
	return UserProfile{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		PhoneNumber:     user.PhoneNumber,
		Bio:             user.Bio,
		AvatarURL:       avatarURL,
		IsEmailVerified: user.IsEmailVerified,
		SellerStatus:    user.SellerStatus,
		Location:        NewLocation(user.ZipCode),
	}
}

// SellerApplicationRequest is the verification application payload.
type SellerApplicationRequest struct {
	Text    string            `json:"text" validate:"required,min=20,max=4000"`
	Answers map[string]string `json:"answers" validate:"omitempty"`
}

type SellerApplicationView struct {
	ID        string                   `json:"id"`
	Text      string                   `json:"text"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt string                   `json:"created_at"`
}

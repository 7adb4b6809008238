package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the domain rules shared across
// services.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Users & auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// --- Locations ---

var ErrZipCodeNotFound = New(
	CodeNotFound,
	"locations",
	"Zip code not found",
	http.StatusNotFound,
)

// --- Store ---

// Popup messages match what the storefront client expects for its
// call-to-action modals.
const (
	MsgSellerNeedsMoreInfo          = "Please complete your farm profile before listing products"
	MsgSellerNeedsEmailVerification = "Please verify your email address before listing products"
)

// ErrSellerNeedsMoreInfo is raised on product creation when the seller
// profile is missing a display name or a location.
var ErrSellerNeedsMoreInfo = PopupError("store", MsgSellerNeedsMoreInfo)

// ErrSellerNeedsEmailVerification is raised on product creation when the
// seller's email is not verified.
var ErrSellerNeedsEmailVerification = PopupError("store", MsgSellerNeedsEmailVerification)

var ErrProductBanned = New(
	CodeForbidden,
	"store",
	"This product has been removed by moderation",
	http.StatusForbidden,
)

// --- Seller verification ---

var ErrAlreadyVerifiedSeller = New(
	CodeInvalidOperation,
	"sellers",
	"Seller is already verified",
	http.StatusBadRequest,
)

var ErrApplicationPending = New(
	CodeInvalidStatus,
	"sellers",
	"A verification application is already pending",
	http.StatusConflict,
)

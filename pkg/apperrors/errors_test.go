package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopupErrorShape(t *testing.T) {
	err := PopupError("store", "Please verify your email address before listing products")

	assert.Equal(t, CodePopup, err.Code)
	assert.Equal(t, http.StatusForbidden, err.HTTPCode)

	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Please verify your email address before listing products", details["popup"])
}

func TestMarshalHidesCauseAndHTTPCode(t *testing.T) {
	cause := errors.New("pq: connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "connection refused")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), "Internal server error")
}

func TestUnwrapKeepsCauseChain(t *testing.T) {
	cause := errors.New("row not found")
	appErr := ErrNotFound(cause)

	assert.ErrorIs(t, appErr, cause)
}

func TestFieldValidationError(t *testing.T) {
	err := FieldValidationError("subcategory_slug", "Unknown subcategory")

	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)

	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Unknown subcategory", details["subcategory_slug"])
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrInvalidCredentials)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

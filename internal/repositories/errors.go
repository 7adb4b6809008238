package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyError reports whether err is a uniqueness violation.
// GORM translates driver errors when TranslateError is enabled; the
// string checks cover drivers that don't.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

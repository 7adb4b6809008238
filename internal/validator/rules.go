package validator

import (
	"log"

	"eggslist_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot be registered is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-seller-status", validateSellerStatus)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateSellerStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is left to 'required'
	}
	return models.SellerStatus(value).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}

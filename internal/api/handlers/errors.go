package handlers

import (
	"errors"

	apperrors "home-services-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isBadRequest reports whether an error is caller input the service rejected,
// either a field-level validation error or a failed struct validation
func isBadRequest(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

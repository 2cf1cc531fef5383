package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed-input error surfaced to the caller
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTechnicianNotFound     = &NotFoundError{Entity: "technician"}
	ErrServiceNotFound        = &NotFoundError{Entity: "service"}
	ErrServiceTypeNotFound    = &NotFoundError{Entity: "service type"}
	ErrCustomerNotFound       = &NotFoundError{Entity: "customer"}
	ErrWorkOrderNotFound      = &NotFoundError{Entity: "work order"}
	ErrWarrantyNotFound       = &NotFoundError{Entity: "warranty"}
	ErrAvailabilityNotFound        = &NotFoundError{Entity: "availability block"}
	ErrAvailabilityRequestNotFound = &NotFoundError{Entity: "availability request"}
	ErrServiceRequestNotFound      = &NotFoundError{Entity: "service request"}
)

// Already Exists Errors
var (
	ErrTechnicianExists = &AlreadyExistsError{Entity: "technician", Context: "with this email"}
	ErrServiceExists    = &AlreadyExistsError{Entity: "service", Context: "with this job name in the category"}
	ErrWorkOrderExists  = &AlreadyExistsError{Entity: "work order", Context: "with this work order ID"}
	ErrCustomerExists   = &AlreadyExistsError{Entity: "customer", Context: "with this email"}
)

// Business Logic Errors
var (
	// ErrZeroRevenue marks a margin computation against zero revenue; the
	// report renders the margin as "undefined" instead of NaN/Infinity.
	ErrZeroRevenue = errors.New("margin undefined when revenue is zero")

	ErrInvalidTimeRange      = errors.New("end time must be after start time")
	ErrNoDatesSelected       = errors.New("at least one date must be selected")
	ErrInvalidReportType     = errors.New("invalid report type")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrNoTechnicianAvailable  = errors.New("no technician available for the requested date")
	ErrContactRequired        = errors.New("email or phone number required")
	ErrRequestAlreadyReviewed = errors.New("availability request has already been reviewed")

	// ErrStaleResponse marks an upstream feed response that was superseded
	// by a newer request and must be discarded.
	ErrStaleResponse = errors.New("stale response discarded")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

package errs

import (
	"errors"
	"fmt"
)

// Domain-specific sentinel errors shared by the usecase layers.
var (
	// Caller identity
	ErrUserNotDefined = errors.New("user not defined")

	// Entity lookups
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	// Authorization
	ErrNotOwner = errors.New("user is not the owner")

	// Owner trying to book their own item; answered like a lookup miss so the
	// ownership relation is not leaked.
	ErrOwnerBooking = errors.New("owner cannot book own item")

	// Booking rules
	ErrItemNotAvailable     = errors.New("item is not available")
	ErrInvalidBookingDate   = errors.New("invalid booking dates")
	ErrStatusAlreadyChanged = errors.New("booking status already changed")

	// Comments
	ErrCommentNotAllowed = errors.New("comment not allowed")

	// Input
	ErrValidation         = errors.New("validation error")
	ErrIncorrectParameter = errors.New("incorrect parameter")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// IncorrectParameterError carries the offending parameter name and value so
// the API layer can echo them back. It is always marked with
// ErrIncorrectParameter for errors.Is matching.
type IncorrectParameterError struct {
	Param string
	Value string
}

func (e *IncorrectParameterError) Error() string {
	return fmt.Sprintf("incorrect parameter %q: %q", e.Param, e.Value)
}

func NewIncorrectParameter(param, value string) error {
	return Mark(&IncorrectParameterError{Param: param, Value: value}, ErrIncorrectParameter)
}

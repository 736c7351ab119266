package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidPassword = errors.New("invalid password")
	ErrDuplicateLogin  = errors.New("duplicate username")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrNotFound        = errors.New("not found")
	ErrUnknownOrder    = errors.New("unknown order")
	ErrUnknownStaff    = errors.New("unknown staff")
)

// FieldError ties a rule violation to one form field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }
func (e *FieldError) Unwrap() error { return e.Err }

// notFound maps gorm's not-found error onto ErrNotFound and leaves the rest alone.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

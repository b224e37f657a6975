package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidCredentialID = errors.New("invalid credential id")
	ErrEmptyTitle          = errors.New("title is required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
)

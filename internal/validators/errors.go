package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrUsernameTooLong = errors.New("username must be at most 50 characters")
	ErrInvalidUsername = errors.New("username may contain only letters, digits, dots, hyphens and underscores")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrWeakPassword    = errors.New("password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a digit")
	ErrInvalidRole     = errors.New("invalid role")
)

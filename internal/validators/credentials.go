package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode"

	"github.com/photogear/camera-catalog/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUsername targets the unique login identifier of an account.
	FieldUsername = "username"

	// FieldEmail targets the contact address of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password presented at
	// registration or account update time.
	FieldPassword = "password"

	// FieldRole targets the authorization role of an account.
	FieldRole = "role"
)

var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	emailRegexp    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const (
	maxUsernameLength = 50
	minPasswordLength = 8
)

// CredentialsValidator implements the Validator interface for the
// account-related domain models: Credentials, UserCreate and UserUpdate.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.UserCreate / *models.UserCreate
//   - models.UserUpdate / *models.UserUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := validateUsername(creds.Username); err != nil {
				return err
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUserCreate(user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := validateUsername(user.Username); err != nil {
				return err
			}
		case FieldEmail:
			if !emailRegexp.MatchString(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validatePasswordStrength(user.Password); err != nil {
				return err
			}
		case FieldRole:
			if user.Role != "" {
				if _, err := models.ParseRole(user.Role); err != nil {
					return fmt.Errorf("%w: %s", ErrInvalidRole, user.Role)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if update.Username != nil {
				if err := validateUsername(*update.Username); err != nil {
					return err
				}
			}
		case FieldEmail:
			if update.Email != nil && !emailRegexp.MatchString(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if update.Password != nil {
				if err := validatePasswordStrength(*update.Password); err != nil {
					return err
				}
			}
		case FieldRole:
			if update.Role != nil {
				if _, err := models.ParseRole(*update.Role); err != nil {
					return fmt.Errorf("%w: %s", ErrInvalidRole, *update.Role)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegexp.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}

// validatePasswordStrength enforces the minimum password policy:
// at least 8 characters including an uppercase letter, a lowercase
// letter and a digit.
func validatePasswordStrength(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}

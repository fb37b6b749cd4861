package validators

import (
	"context"
	"testing"

	"github.com/photogear/camera-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{
			name:  "valid credentials",
			creds: models.Credentials{Username: "alice", Password: "whatever"},
		},
		{
			name:    "empty username",
			creds:   models.Credentials{Password: "whatever"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty password",
			creds:   models.Credentials{Username: "alice"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "username with spaces",
			creds:   models.Credentials{Username: "al ice", Password: "whatever"},
			wantErr: ErrInvalidUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_UserCreate(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	valid := models.UserCreate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	}

	tests := []struct {
		name    string
		mutate  func(u *models.UserCreate)
		wantErr error
	}{
		{
			name:   "valid user",
			mutate: func(u *models.UserCreate) {},
		},
		{
			name:   "explicit admin role accepted",
			mutate: func(u *models.UserCreate) { u.Role = "admin" },
		},
		{
			name:    "bad email",
			mutate:  func(u *models.UserCreate) { u.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(u *models.UserCreate) { u.Password = "Ab1" },
			wantErr: ErrWeakPassword,
		},
		{
			name:    "no uppercase letter",
			mutate:  func(u *models.UserCreate) { u.Password = "sup3rsecret" },
			wantErr: ErrWeakPassword,
		},
		{
			name:    "no digit",
			mutate:  func(u *models.UserCreate) { u.Password = "SuperSecret" },
			wantErr: ErrWeakPassword,
		},
		{
			name:    "unknown role",
			mutate:  func(u *models.UserCreate) { u.Role = "owner" },
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := valid
			tt.mutate(&user)

			err := v.Validate(ctx, &user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_UserUpdate(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.UserUpdate{}))
	})

	t.Run("weak new password rejected", func(t *testing.T) {
		weak := "short"
		err := v.Validate(ctx, models.UserUpdate{Password: &weak})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("field scoping skips unrelated fields", func(t *testing.T) {
		bad := "not-an-email"
		err := v.Validate(ctx, models.UserUpdate{Email: &bad}, FieldPassword)
		assert.NoError(t, err)
	})
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCredentialsValidator_UnknownField(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), models.Credentials{Username: "alice", Password: "x"}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

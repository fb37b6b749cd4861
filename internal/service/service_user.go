package service

import (
	"context"
	"fmt"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/internal/utils"
	"github.com/photogear/camera-catalog/internal/validators"
	"github.com/photogear/camera-catalog/models"
)

// userService implements UserService for administrative account management.
// In contrast to authService.RegisterUser, CreateUser honours the role in
// the request, so administrators can provision other administrators.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// CreateUser provisions an account with the requested role.
// An empty role defaults to [models.RoleUser].
func (s *userService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	role := models.RoleUser
	if user.Role != "" {
		parsed, err := models.ParseRole(user.Role)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		role = parsed
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: passwordHash,
		Role:         role,
		Avatar:       user.Avatar,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.userRepository.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// UpdateUser applies a partial account update. When the update carries a
// new password it is validated against the password policy and replaced
// with its bcrypt digest before reaching the repository.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("id", id).Msg("invalid user update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &passwordHash
	}

	return s.userRepository.UpdateUser(ctx, id, update)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepository.DeleteUser(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/internal/validators"
	"github.com/MKhiriev/guest-nama/models"
)

// userService is the server-side account service. It normalizes incoming
// accounts, validates them and delegates persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository.
func NewUserService(userRepository store.UserRepository, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AddUser stores a new account.
//
// Before validation the phone is normalized, a missing ID is generated,
// an empty role becomes USER and a zero CreatedAt becomes now. Only USER
// accounts can be created through this path; administrators come from
// migrations.
//
// Returns:
//   - ErrRoleNotAllowed if the role is ADMIN.
//   - ErrInvalidDataProvided (wrapping the validator error) on invalid input.
//   - store.ErrPhoneAlreadyExists (wrapped) if the phone is taken.
func (u *userService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Name = strings.TrimSpace(user.Name)
	user.Phone = utils.NormalizePhone(user.Phone)
	user.PasswordHash = strings.ToLower(strings.TrimSpace(user.PasswordHash))
	if user.ID == "" {
		user.ID = u.ids.Generate()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = u.now().UTC()
	}

	if user.Role == models.RoleAdmin {
		log.Warn().Str("user_id", user.ID).Msg("attempt to create an ADMIN account")
		return models.User{}, ErrRoleNotAllowed
	}

	if err := u.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("user_id", user.ID).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := u.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrPhoneAlreadyExists) {
			log.Info().Str("user_id", user.ID).Msg("signup rejected: phone already exists")
		} else {
			log.Err(err).Str("user_id", user.ID).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

func (u *userService) VerifyUser(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}

	exists, err := u.userRepository.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("verify user: %w", err)
	}
	return exists, nil
}

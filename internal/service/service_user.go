package service

import (
	"context"
	"fmt"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create registers a new account. The plaintext password is bcrypt-hashed
// here; nothing downstream of this method ever sees it.
func (s *userService) Create(ctx context.Context, in models.UserIn) (models.User, error) {
	log := logger.FromContext(ctx)

	if in.Username == "" || in.Password == "" {
		log.Error().Str("func", "*userService.Create").Str("username", in.Username).Msg("empty username or password")
		return models.User{}, ErrInvalidDataProvided
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      in.FirstName,
		MiddleName:     in.MiddleName,
		LastName:       in.LastName,
		HashedPassword: hashedPassword,
		Role:           in.Role,
		Disabled:       in.Disabled,
		TempPwd:        in.TempPwd,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Str("username", in.Username).Msg("user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return created, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

func (s *userService) GetAll(ctx context.Context, page, size int) (models.Page[models.User], error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return models.Page[models.User]{}, err
	}

	return paginate(users, page, size), nil
}

func (s *userService) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return s.userRepository.UpdateUser(ctx, id, update)
}

func (s *userService) Delete(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.DeleteUser(ctx, id)
}

package service

import (
	"errors"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"
	"canteen-inventory-api/pkg/validator"

	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string     `json:"username" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role" validate:"required"`
}

type UserService interface {
	Register(req *RegisterRequest) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req *RegisterRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput("Missing required fields")
	}
	if len(req.Password) < 6 {
		return nil, apperr.InvalidInput("Password must be at least 6 characters")
	}
	if !req.Role.Valid() {
		return nil, apperr.InvalidInput("Role must be admin or staff")
	}

	if existing, err := s.userRepo.FindByUsername(req.Username); err == nil && existing != nil {
		return nil, apperr.Conflict("Username already exists")
	}

	user := &model.User{
		Username: req.Username,
		Role:     req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		// The pre-check can race a concurrent registration; the unique index
		// is the real guarantee
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Username already exists")
		}
		return nil, apperr.Internal(err)
	}

	return user, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

package service

import (
	"errors"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"
	"canteen-inventory-api/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	ChangePassword(userID uint, currentPassword, newPassword string) error
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, apperr.InvalidInput("Username and password are required")
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		// Same answer for unknown user and wrong password
		return nil, apperr.Unauthenticated("Invalid username or password")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.Unauthenticated("Invalid username or password")
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperr.InvalidInput("Missing required fields")
	}
	if len(newPassword) < 6 {
		return apperr.InvalidInput("New password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	if !user.CheckPassword(currentPassword) {
		return apperr.InvalidInput("Current password is incorrect")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return apperr.Internal(err)
	}
	if err := s.userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		return apperr.Internal(err)
	}

	return nil
}

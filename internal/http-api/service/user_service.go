package service

import (
	"context"
	"fmt"

	"mediahub/internal/auth"
	"mediahub/internal/http-api/dto"
	"mediahub/internal/http-api/models"
	"mediahub/internal/http-api/repository"
)

type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(r repository.UserRepository) UserService {
	return &userService{repo: r}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

// Create hashes the raw password and persists the user. The plaintext is
// dropped here; only the hash ever reaches the repository.
func (s *userService) Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error) {
	hashed, err := auth.Hashpassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := in.ToModel()
	user.Password = hashed

	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

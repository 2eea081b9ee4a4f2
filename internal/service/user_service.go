package service

import (
	"fmt"
	"strings"
	"time"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/repository"
	"wayfare-sync-server/pkg/syncid"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) GetByID(id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Password = ""
	return user, nil
}

func (s *UserService) Update(userID string, req *domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Username != "" && req.Username != user.Username {
		usernameExists, err := s.userRepo.UsernameExists(req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if usernameExists {
			return nil, fmt.Errorf("username already taken")
		}
		user.Username = req.Username
	}

	if req.HomeCurrency != "" {
		user.HomeCurrency = strings.ToUpper(req.HomeCurrency)
	}

	if req.SyncID != "" {
		if !syncid.Valid(req.SyncID) {
			return nil, ErrInvalidSyncID
		}
		user.SyncID = req.SyncID
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Password = ""
	return user, nil
}

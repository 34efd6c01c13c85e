package service

import (
	"errors"

	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return user, err
}

// UpdateProfile changes the caller's display name. Profile updates are
// self-only; the caller's identity comes from the session claims.
func (s *UserService) UpdateProfile(userID uint, name string) (*model.User, error) {
	if len(name) < 2 {
		return nil, util.InvalidArgument("Name must be at least 2 characters")
	}
	if len(name) > 50 {
		return nil, util.InvalidArgument("Name must be at most 50 characters")
	}

	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}

	user.Image = url
	return s.UserRepo.Update(user)
}

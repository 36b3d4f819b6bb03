package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken = errors.New("email address already in use")
)

type AuthService interface {
	Register(email, password, name string) (*model.User, error)
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(email, password, name string) (*model.User, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email: email,
		Name:  name,
		Role:  model.RoleCustomer,
	}

	// The first account on a fresh install belongs to the shop owner.
	if n, err := s.userRepo.Count(); err == nil && n == 0 {
		user.Role = model.RoleAdmin
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	// The unique index is the real guard; the FindByEmail check above
	// only exists for the friendlier message.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/BuzzLyutic/simplido/internal/auth"
	"github.com/BuzzLyutic/simplido/internal/model"
	"github.com/BuzzLyutic/simplido/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	repo   repo.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewUserService(repo repo.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (model.User, error) {
	if err := s.validate(username, email, password); err != nil {
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, err
	}

	// Дубликат username/email ловится уникальными индексами, см. repo.mapError
	return s.repo.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			// Неизвестный пользователь и неверный пароль неразличимы для клиента
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.IssueDefault(user.Username)
}

func (s *UserService) validate(username, email, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrValidation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrValidation
	}
	return nil
}

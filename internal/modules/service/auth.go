package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/unicollab-io/unicollab/internal/config"
	"github.com/unicollab-io/unicollab/internal/modules/model"
	"github.com/unicollab-io/unicollab/internal/modules/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type RegisterInput struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type authService struct {
	users  repo.UserRepo
	tokens repo.TokenRepo
	cost   int
	log    *zap.Logger
}

func NewAuthService(users repo.UserRepo, tokens repo.TokenRepo, cfg *config.Config, log *zap.Logger) AuthService {
	cost := cfg.Auth.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &authService{users: users, tokens: tokens, cost: cost, log: log}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.Password != in.PasswordConfirmation {
		return nil, "", NewValidationError("password", "passwords must match")
	}

	taken, err := s.users.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("user registered", zap.String("username", user.Username))
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error for unknown user and bad password.
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(ctx, user.ID)
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.Revoke(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrTokenNotFound) {
			return ErrNoActiveToken
		}
		return err
	}
	return nil
}

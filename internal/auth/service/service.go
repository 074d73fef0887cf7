// Package service provides business logic layer for authentication.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/tbrandt27/football-pick-em-sub003/internal/auth/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/token"
	"github.com/tbrandt27/football-pick-em-sub003/internal/config"
	userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"
	userRepository "github.com/tbrandt27/football-pick-em-sub003/internal/user/repository"
)

// InviteAcceptor consumes a pending invitation on behalf of a newly
// registered user. Implemented by the invite service.
type InviteAcceptor interface {
	AcceptForUser(ctx context.Context, inviteToken string, userID uint) error
}

// Service defines the interface for auth business logic operations.
type Service interface {
	// Register creates an account and returns a fresh token.
	Register(ctx context.Context, req *authModel.RegisterRequest) (*authModel.AuthResponse, error)

	// Login verifies credentials and returns a fresh token.
	Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.AuthResponse, error)
}

type service struct {
	users   userRepository.Repository
	invites InviteAcceptor
	cfg     config.AuthConfig
	logger  *zap.SugaredLogger
}

// New creates a new auth service instance. invites may be nil when
// invitation acceptance is not wired (tests).
func New(users userRepository.Repository, invites InviteAcceptor, cfg config.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{users: users, invites: invites, cfg: cfg, logger: logger}
}

// Register creates an account and returns a fresh token.
func (s *service) Register(ctx context.Context, req *authModel.RegisterRequest) (*authModel.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userModel.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if req.InviteToken != "" && s.invites != nil {
		// Registration itself succeeded; a bad invite token only loses
		// the pool membership, not the account.
		if err := s.invites.AcceptForUser(ctx, req.InviteToken, user.ID); err != nil {
			s.logger.Warnw("invitation not accepted during registration",
				"user_id", user.ID, "error", err)
		}
	}

	tok, err := token.Issue(s.cfg.JWTSecret, s.cfg.TokenTTL, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	return &authModel.AuthResponse{Token: tok, User: user}, nil
}

// Login verifies credentials and returns a fresh token.
func (s *service) Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == userModel.ErrUserNotFound {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, authModel.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warnw("failed to record last login", "user_id", user.ID, "error", err)
	}
	user.LastLoginAt = &now

	tok, err := token.Issue(s.cfg.JWTSecret, s.cfg.TokenTTL, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &authModel.AuthResponse{Token: tok, User: user}, nil
}

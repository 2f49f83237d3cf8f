package service

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/hash"
	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/tokens"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	Token string
	User  transport.UserInfo
}

// Login returns ErrInvalidCredentials for both an unknown email and a
// wrong password; callers must not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		l.Warn("login failed", "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "bad password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.SignAccessToken(user.ID, user.Role, user.Name, s.JWTSecret)
	if err != nil {
		l.Error("login failed", "reason", "token signing", "error", err)
		return nil, err
	}

	l.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	return &LoginResult{
		Token: token,
		User: transport.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

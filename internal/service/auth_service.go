package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/redis"
)

// AuthService handles login, logout and the current-user lookup.
type AuthService struct {
	users  repository.UserRepository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService. rdb may be nil.
func NewAuthService(users repository.UserRepository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// Login checks the credentials and issues a bearer token. A missing
// account and a wrong password both come back as ErrInvalidCredentials
// so the response does not leak which one it was.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role))

	return &dto.LoginResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

// Logout revokes the presented token by blacklisting its jti until
// the token would have expired anyway. Without Redis the revocation is
// skipped and the token simply runs out on its own.
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		s.logger.Warn("logout without redis, token not revoked",
			zap.Uint("user_id", claims.UserID))
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("user logged out", zap.Uint("user_id", claims.UserID))
	return nil
}

// Me returns the account projection of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Phone:  user.Phone,
		Avatar: user.Avatar,
	}
}

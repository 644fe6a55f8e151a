package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rangeiq/internal/config"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenIssuer = "rangeiq"

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrAuthDisabled    = errors.New("user tokens are disabled")
)

// AuthService issues and checks user ownership tokens. With no secret configured it is disabled.
type AuthService interface {
	Enabled() bool
	IssueToken(ctx context.Context, userID string) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authServiceImpl{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

func (s *authServiceImpl) Enabled() bool {
	return len(s.secret) > 0
}

func (s *authServiceImpl) IssueToken(ctx context.Context, userID string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	now := s.now()
	claims := dto.AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

package services

import (
	"context"
	"errors"
	"time"

	"shareit-api/internal/application/ports"
	"shareit-api/internal/infrastructure/jwt"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrOAuthExchange         = errors.New("google authentication failed")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	google      ports.GoogleOAuth
	userService ports.UserService
	jwtService  *jwt.Service
}

func NewAuthService(
	google ports.GoogleOAuth,
	userService ports.UserService,
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		google:      google,
		userService: userService,
		jwtService:  jwtService,
	}
}

func (as *AuthService) AuthCodeURL(state string) string {
	return as.google.AuthCodeURL(state)
}

func (as *AuthService) HandleGoogleCallback(ctx context.Context, code string) (string, error) {
	profile, err := as.google.FetchProfile(ctx, code)
	if err != nil {
		return "", ErrOAuthExchange
	}

	u, err := as.userService.LoginGoogleUser(ctx, profile)
	if err != nil {
		return "", err
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Email, tokenLifetime)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

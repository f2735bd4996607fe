package ports

import (
	"context"

	"shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/oauth"
)

type UserService interface {
	// LoginGoogleUser creates or refreshes the account for a verified
	// Google profile.
	LoginGoogleUser(ctx context.Context, profile *oauth.GoogleProfile) (*user.User, error)
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
}

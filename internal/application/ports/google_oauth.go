package ports

import (
	"context"

	"shareit-api/internal/infrastructure/oauth"
)

type GoogleOAuth interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*oauth.GoogleProfile, error)
}

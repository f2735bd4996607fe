package ports

import (
	"context"
)

type Auth interface {
	// AuthCodeURL builds the Google consent page redirect for one login
	// attempt, bound to the given anti-forgery state.
	AuthCodeURL(state string) string
	// HandleGoogleCallback exchanges the callback code, upserts the user and
	// returns a signed access token.
	HandleGoogleCallback(ctx context.Context, code string) (string, error)
}

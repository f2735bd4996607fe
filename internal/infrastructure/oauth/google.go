package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"shareit-api/config"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the userinfo payload the service needs.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type GoogleClient struct {
	cfg *oauth2.Config
}

func NewGoogle(cfg config.Google) *GoogleClient {
	return &GoogleClient{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (g *GoogleClient) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// FetchProfile exchanges the callback code and reads the user's profile.
func (g *GoogleClient) FetchProfile(ctx context.Context, code string) (*GoogleProfile, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	resp, err := g.cfg.Client(ctx, tok).Get(userinfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("failed to read userinfo: %w", err)
	}

	var profile GoogleProfile
	if err = json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse userinfo: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo has no account id")
	}

	return &profile, nil
}

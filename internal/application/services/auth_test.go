package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "shareit-api/internal/domain/user"
	jwtSvc "shareit-api/internal/infrastructure/jwt"
	"shareit-api/internal/infrastructure/oauth"
)

type FakeGoogleOAuth struct {
	FetchProfileFunc func(ctx context.Context, code string) (*oauth.GoogleProfile, error)
}

func (f *FakeGoogleOAuth) AuthCodeURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}
func (f *FakeGoogleOAuth) FetchProfile(ctx context.Context, code string) (*oauth.GoogleProfile, error) {
	if f.FetchProfileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchProfileFunc(ctx, code)
}

func TestAuthService_HandleGoogleCallback(t *testing.T) {
	j := jwtSvc.New("test-secret")
	userUUID := uuid.New()

	t.Run("success returns a valid token", func(t *testing.T) {
		users := &FakeUserRepo2{
			UpsertGoogleUserFunc: func(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
				assert.Equal(t, "g-123", req.GoogleID)
				assert.Equal(t, "u@example.com", req.Email)
				return &domainUser.User{UUID: userUUID, Email: req.Email, Name: req.Name}, nil
			},
		}
		google := &FakeGoogleOAuth{
			FetchProfileFunc: func(ctx context.Context, code string) (*oauth.GoogleProfile, error) {
				assert.Equal(t, "good-code", code)
				return &oauth.GoogleProfile{ID: "g-123", Email: "u@example.com", Name: "U"}, nil
			},
		}
		us := NewUserService(users, newTestCounter())
		as := NewAuthService(google, us, j)

		token, err := as.HandleGoogleCallback(context.Background(), "good-code")
		require.NoError(t, err)

		claims, err := j.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userUUID.String(), claims.UserID)
		assert.Equal(t, "u@example.com", claims.Email)
	})

	t.Run("exchange failure", func(t *testing.T) {
		google := &FakeGoogleOAuth{
			FetchProfileFunc: func(ctx context.Context, code string) (*oauth.GoogleProfile, error) {
				return nil, errors.New("bad code")
			},
		}
		as := NewAuthService(google, NewUserService(&FakeUserRepo2{}, newTestCounter()), j)

		_, err := as.HandleGoogleCallback(context.Background(), "bad-code")
		require.ErrorIs(t, err, ErrOAuthExchange)
	})

	t.Run("upsert failure", func(t *testing.T) {
		users := &FakeUserRepo2{
			UpsertGoogleUserFunc: func(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
				return nil, errors.New("db error")
			},
		}
		google := &FakeGoogleOAuth{
			FetchProfileFunc: func(ctx context.Context, code string) (*oauth.GoogleProfile, error) {
				return &oauth.GoogleProfile{ID: "g-123", Email: "u@example.com"}, nil
			},
		}
		as := NewAuthService(google, NewUserService(users, newTestCounter()), j)

		_, err := as.HandleGoogleCallback(context.Background(), "good-code")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrOAuthExchange)
	})
}

// FakeUserRepo2 also fakes the login path, FakeUserRepo only resolves ids.
type FakeUserRepo2 struct {
	UpsertGoogleUserFunc func(ctx context.Context, req domainUser.User) (*domainUser.User, error)
	FetchUserByIDFunc    func(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error)
}

func (f *FakeUserRepo2) UpsertGoogleUser(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
	if f.UpsertGoogleUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpsertGoogleUserFunc(ctx, req)
}
func (f *FakeUserRepo2) FetchUserByID(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, uuid)
}
func (f *FakeUserRepo2) FetchInternalID(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
	return 0, errors.New("not used")
}

func TestUserService_FindUserByID(t *testing.T) {
	userUUID := uuid.New()
	users := &FakeUserRepo2{
		FetchUserByIDFunc: func(ctx context.Context, id domainUser.UUID) (*domainUser.User, error) {
			assert.Equal(t, userUUID, id)
			return &domainUser.User{UUID: id, Email: "u@example.com"}, nil
		},
	}
	us := NewUserService(users, newTestCounter())

	u, err := us.FindUserByID(context.Background(), userUUID)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", u.Email)
}

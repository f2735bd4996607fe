package user

import (
	"context"
)

type Repository interface {
	// UpsertGoogleUser creates the user on first login and refreshes
	// email/name on subsequent logins, keyed by the Google account id.
	UpsertGoogleUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
}

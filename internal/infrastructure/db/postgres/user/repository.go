package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) UpsertGoogleUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		UpsertGoogleUser,
		req.GoogleID, req.Email, req.Name,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.GoogleID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.GoogleID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return user.ID(id), nil
}

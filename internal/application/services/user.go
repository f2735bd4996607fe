package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"shareit-api/internal/application/ports"
	domain "shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/oauth"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) LoginGoogleUser(ctx context.Context, profile *oauth.GoogleProfile) (*domain.User, error) {
	u, err := us.userRepository.UpsertGoogleUser(ctx, domain.User{
		GoogleID: profile.ID,
		Email:    profile.Email,
		Name:     profile.Name,
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_logins_total").Inc()

	return u, nil
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

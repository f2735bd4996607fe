package user

import (
	domain "shareit-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:     model.UUID,
		GoogleID: model.GoogleID,
		Email:    model.Email,
		Name:     model.Name,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

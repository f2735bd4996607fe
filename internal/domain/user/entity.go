package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID     UUID
		GoogleID string
		Email    string
		Name     string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

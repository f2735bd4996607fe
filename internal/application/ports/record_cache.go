package ports

import (
	"context"

	"shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/cache"
)

type RecordCache interface {
	FetchRecords(ctx context.Context, owner user.UUID) ([]cache.Entry, error)
	PushRecord(ctx context.Context, owner user.UUID, e cache.Entry) error
	ReplaceRecords(ctx context.Context, owner user.UUID, entries []cache.Entry) error
}

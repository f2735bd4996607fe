package filerecord

import (
	"context"

	"shareit-api/internal/domain/user"
)

type Repository interface {
	// FetchFileRecords returns all records of the owner, newest first.
	FetchFileRecords(ctx context.Context, ownerID user.ID) (FileRecords, error)
	// FetchFileRecordByAlias returns (nil, nil) when no record matches.
	FetchFileRecordByAlias(ctx context.Context, ownerID user.ID, alias string) (*FileRecord, error)
	CreateFileRecord(ctx context.Context, ownerID user.ID, req *FileRecord) (*FileRecord, error)
}

package ports

import (
	"context"
	"mime/multipart"

	"shareit-api/internal/domain/filerecord"
	"shareit-api/internal/domain/user"
)

type FileRecordService interface {
	// CreateFileRecord records an upload the client already pinned, from the
	// serialized pinning response.
	CreateFileRecord(ctx context.Context, ownerUUID user.UUID, alias, password, pinResponseJSON string) (*filerecord.FileRecord, error)
	// PinAndCreateFileRecord pins the file server-side first, then records it.
	PinAndCreateFileRecord(ctx context.Context, ownerUUID user.UUID, alias, password string, in *multipart.FileHeader) (*filerecord.FileRecord, error)
	FindFileRecords(ctx context.Context, ownerUUID user.UUID) (filerecord.FileRecords, error)
	RetrieveCID(ctx context.Context, ownerUUID user.UUID, alias, password string) (string, error)
}

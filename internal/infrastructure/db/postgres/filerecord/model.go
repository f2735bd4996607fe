package filerecord

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAliasAlreadyExists   = errors.New("alias already exists")
	ErrContentAlreadyExists = errors.New("duplicate content")
)

type (
	FileRecord struct {
		ID      uint64
		UUID    uuid.UUID
		OwnerID uint64

		Alias        string
		PasswordHash *string
		CID          string
		PinID        string
		PinSizeBytes uint64
		PinTimestamp time.Time
		FileName     string
		MimeType     string
		FileCount    int
		IsDuplicate  bool
		PublicURL    string

		CreatedAt time.Time
	}
	FileRecords []*FileRecord
)

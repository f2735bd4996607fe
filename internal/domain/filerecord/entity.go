package filerecord

import (
	"time"

	"github.com/google/uuid"

	"shareit-api/internal/domain/user"
)

type (
	// FileRecord is one pinned upload tagged with a per-owner alias.
	// Records are immutable once created.
	FileRecord struct {
		UUID    uuid.UUID
		OwnerID user.ID

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

// Protected reports whether retrieval requires a password.
func (fr *FileRecord) Protected() bool {
	return fr.PasswordHash != nil && *fr.PasswordHash != ""
}

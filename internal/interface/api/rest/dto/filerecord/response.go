package filerecord

import (
	"time"

	"github.com/google/uuid"
)

type (
	FileRecord struct {
		UUID         uuid.UUID `json:"uuid"`
		Alias        string    `json:"alias"`
		CID          string    `json:"cid"`
		FileName     string    `json:"file_name"`
		MimeType     string    `json:"mime_type"`
		PinSizeBytes uint64    `json:"pin_size_bytes"`
		PublicURL    string    `json:"public_url"`
		CreatedAt    time.Time `json:"created_at"`
	}
	FileRecords  []FileRecord
	ResponseData struct {
		Data FileRecords `json:"data"`
	}
	RetrieveResponse struct {
		CID string `json:"cid"`
	}
)

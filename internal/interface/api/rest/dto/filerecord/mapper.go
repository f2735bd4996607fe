package filerecord

import (
	"shareit-api/internal/domain/filerecord"
)

func ToResponseFileRecord(frDomain filerecord.FileRecord) FileRecord {
	var fr = FileRecord{
		UUID:         frDomain.UUID,
		Alias:        frDomain.Alias,
		CID:          frDomain.CID,
		FileName:     frDomain.FileName,
		MimeType:     frDomain.MimeType,
		PinSizeBytes: frDomain.PinSizeBytes,
		PublicURL:    frDomain.PublicURL,
		CreatedAt:    frDomain.CreatedAt,
	}

	return fr
}

func ToResponseFileRecords(frsDomain filerecord.FileRecords) FileRecords {
	frs := make(FileRecords, len(frsDomain))
	for idx, fr := range frsDomain {
		frs[idx] = ToResponseFileRecord(*fr)
	}

	return frs
}

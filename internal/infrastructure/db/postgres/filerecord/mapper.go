package filerecord

import (
	domain "shareit-api/internal/domain/filerecord"
	"shareit-api/internal/domain/user"
)

func fromDBModel(model *FileRecord) *domain.FileRecord {
	var fr = &domain.FileRecord{
		UUID:    model.UUID,
		OwnerID: user.ID(model.OwnerID),

		Alias:        model.Alias,
		PasswordHash: model.PasswordHash,
		CID:          model.CID,
		PinID:        model.PinID,
		PinSizeBytes: model.PinSizeBytes,
		PinTimestamp: model.PinTimestamp,
		FileName:     model.FileName,
		MimeType:     model.MimeType,
		FileCount:    model.FileCount,
		IsDuplicate:  model.IsDuplicate,
		PublicURL:    model.PublicURL,

		CreatedAt: model.CreatedAt,
	}

	return fr
}

func fromDBModels(models *FileRecords) domain.FileRecords {
	frs := make(domain.FileRecords, len(*models))
	for idx, m := range *models {
		frs[idx] = fromDBModel(m)
	}

	return frs
}

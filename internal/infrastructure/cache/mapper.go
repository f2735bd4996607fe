package cache

import (
	domain "shareit-api/internal/domain/filerecord"
)

func FromDomain(fr *domain.FileRecord) Entry {
	var e = Entry{
		UUID:         fr.UUID,
		Alias:        fr.Alias,
		CID:          fr.CID,
		FileName:     fr.FileName,
		MimeType:     fr.MimeType,
		PinSizeBytes: fr.PinSizeBytes,
		PublicURL:    fr.PublicURL,
		CreatedAt:    fr.CreatedAt,
	}

	return e
}

func FromDomainRecords(frs domain.FileRecords) []Entry {
	entries := make([]Entry, len(frs))
	for idx, fr := range frs {
		entries[idx] = FromDomain(fr)
	}

	return entries
}

func ToDomain(e Entry) *domain.FileRecord {
	var fr = &domain.FileRecord{
		UUID:         e.UUID,
		Alias:        e.Alias,
		CID:          e.CID,
		FileName:     e.FileName,
		MimeType:     e.MimeType,
		PinSizeBytes: e.PinSizeBytes,
		PublicURL:    e.PublicURL,
		CreatedAt:    e.CreatedAt,
	}

	return fr
}

func ToDomainRecords(entries []Entry) domain.FileRecords {
	frs := make(domain.FileRecords, len(entries))
	for idx, e := range entries {
		frs[idx] = ToDomain(e)
	}

	return frs
}

package filerecord

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"shareit-api/internal/domain/filerecord"
	"shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) filerecord.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileRecords(ctx context.Context, ownerID user.ID) (filerecord.FileRecords, error) {
	rows, err := r.db.Query(ctx, SelectFileRecords, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frs FileRecords
	for rows.Next() {
		fr := new(FileRecord)

		if err = rows.Scan(
			&fr.ID,
			&fr.UUID,
			&fr.OwnerID,

			&fr.Alias,
			&fr.PasswordHash,
			&fr.CID,
			&fr.PinID,
			&fr.PinSizeBytes,
			&fr.PinTimestamp,
			&fr.FileName,
			&fr.MimeType,
			&fr.FileCount,
			&fr.IsDuplicate,
			&fr.PublicURL,

			&fr.CreatedAt,
		); err != nil {
			return nil, err
		}

		frs = append(frs, fr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&frs), nil
}

func (r *Repository) FetchFileRecordByAlias(ctx context.Context, ownerID user.ID, alias string) (*filerecord.FileRecord, error) {
	fr := new(FileRecord)

	err := r.db.QueryRow(ctx, SelectFileRecordByAlias, ownerID, alias).Scan(
		&fr.ID,
		&fr.UUID,
		&fr.OwnerID,

		&fr.Alias,
		&fr.PasswordHash,
		&fr.CID,
		&fr.PinID,
		&fr.PinSizeBytes,
		&fr.PinTimestamp,
		&fr.FileName,
		&fr.MimeType,
		&fr.FileCount,
		&fr.IsDuplicate,
		&fr.PublicURL,

		&fr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(fr), err
}

func (r *Repository) CreateFileRecord(ctx context.Context, ownerID user.ID, req *filerecord.FileRecord) (*filerecord.FileRecord, error) {
	fr := new(FileRecord)

	err := r.db.QueryRow(
		ctx,
		InsertFileRecord,
		ownerID, req.Alias, req.PasswordHash, req.CID, req.PinID, req.PinSizeBytes, req.PinTimestamp,
		req.FileName, req.MimeType, req.FileCount, req.IsDuplicate, req.PublicURL,
	).Scan(
		&fr.ID,
		&fr.UUID,
		&fr.OwnerID,

		&fr.Alias,
		&fr.PasswordHash,
		&fr.CID,
		&fr.PinID,
		&fr.PinSizeBytes,
		&fr.PinTimestamp,
		&fr.FileName,
		&fr.MimeType,
		&fr.FileCount,
		&fr.IsDuplicate,
		&fr.PublicURL,

		&fr.CreatedAt,
	)
	if err != nil {
		if constraint, ok := postgres.UniqueViolationConstraint(err); ok {
			switch constraint {
			case ConstraintOwnerCID:
				return nil, ErrContentAlreadyExists
			default:
				// ConstraintOwnerAlias or an older index name
				return nil, ErrAliasAlreadyExists
			}
		}
		return nil, err
	}

	return fromDBModel(fr), err
}

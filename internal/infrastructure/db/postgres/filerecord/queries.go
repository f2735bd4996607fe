package filerecord

// Uniqueness of (owner_id, alias) and (owner_id, cid) is enforced by the
// unique indexes below, not by read-then-write. A violated constraint name
// tells which conflict the caller hit.
const (
	ConstraintOwnerAlias = "file_records_owner_id_alias_key"
	ConstraintOwnerCID   = "file_records_owner_id_cid_key"
)

const (
	SelectFileRecords = `
		SELECT id, uuid, owner_id, alias, password_hash, cid, pin_id, pin_size_bytes, pin_timestamp,
		       file_name, mime_type, file_count, is_duplicate, public_url, created_at
		FROM file_records
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	SelectFileRecordByAlias = `
		SELECT id, uuid, owner_id, alias, password_hash, cid, pin_id, pin_size_bytes, pin_timestamp,
		       file_name, mime_type, file_count, is_duplicate, public_url, created_at
		FROM file_records
		WHERE owner_id = $1 AND alias = $2
	`
	InsertFileRecord = `
		INSERT INTO file_records (owner_id, alias, password_hash, cid, pin_id, pin_size_bytes, pin_timestamp,
		                          file_name, mime_type, file_count, is_duplicate, public_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING
		  id, uuid, owner_id, alias, password_hash, cid, pin_id, pin_size_bytes, pin_timestamp,
		  file_name, mime_type, file_count, is_duplicate, public_url, created_at
	`
)

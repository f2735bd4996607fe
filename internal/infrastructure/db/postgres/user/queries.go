package user

const (
	UpsertGoogleUser = `
		INSERT INTO users (google_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (google_id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, updated_at = now()
		RETURNING id, uuid, google_id, email, name, created_at, updated_at
	`
	SelectUserByID = `
		SELECT id, uuid, google_id, email, name, created_at, updated_at
		FROM users
		WHERE uuid = $1
	`
	SelectIdByUUID = `
		SELECT id
		FROM users
		WHERE uuid = $1
	`
)

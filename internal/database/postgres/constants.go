package postgres

// PostgreSQL error codes the repository reacts to
const (
	pgCodeUniqueViolation = "23505"
)

// Error messages
const (
	ErrMsgFailedToBeginTx       = "failed to begin transaction"
	ErrMsgFailedToCommitTx      = "failed to commit transaction"
	ErrMsgFailedToInsertPlayer  = "failed to insert player"
	ErrMsgFailedToInsertWeapon  = "failed to insert weapon"
	ErrMsgFailedToInsertInv     = "failed to insert inventory"
	ErrMsgFailedToGetPlayer     = "failed to get player"
	ErrMsgFailedToLockWeapon    = "failed to lock weapon"
	ErrMsgFailedToLockInventory = "failed to lock inventory"
	ErrMsgFailedToUpdateWeapon  = "failed to update weapon"
	ErrMsgFailedToUpdateInv     = "failed to update inventory"
)

// Queries
const (
	queryInsertPlayer = `
		INSERT INTO players (player_id, username, platform, created_at)
		VALUES ($1, $2, $3, $4)`

	queryInsertWeapon = `
		INSERT INTO weapons (player_id, name, upgrade_level, glow)
		VALUES ($1, $2, $3, $4)`

	queryInsertInventory = `
		INSERT INTO inventories (player_id, sigil_protection)
		VALUES ($1, $2)`

	queryGetPlayer = `
		SELECT p.player_id, p.username, p.platform, p.created_at,
		       w.name, w.upgrade_level, w.glow,
		       i.sigil_protection
		FROM players p
		JOIN weapons w ON w.player_id = p.player_id
		JOIN inventories i ON i.player_id = p.player_id
		WHERE p.player_id = $1`

	queryPlayerExists = `SELECT EXISTS (SELECT 1 FROM players WHERE player_id = $1)`

	queryLockWeapon = `
		SELECT name, upgrade_level, glow, version
		FROM weapons
		WHERE player_id = $1
		FOR UPDATE`

	queryLockInventory = `
		SELECT sigil_protection
		FROM inventories
		WHERE player_id = $1
		FOR UPDATE`

	queryUpdateWeapon = `
		UPDATE weapons
		SET upgrade_level = $2, glow = $3, version = version + 1, updated_at = NOW()
		WHERE player_id = $1 AND version = $4`

	queryUpdateInventory = `
		UPDATE inventories
		SET sigil_protection = $2, updated_at = NOW()
		WHERE player_id = $1`
)

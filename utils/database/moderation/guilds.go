package moderation

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureGuild creates the guild row if it does not exist yet. Safe to call
// concurrently for the same guild.
func EnsureGuild(db *sqlx.DB, guildID string) error {
	_, err := db.Exec(`INSERT INTO guilds (guild_id) VALUES (?) ON CONFLICT(guild_id) DO NOTHING`, guildID)
	if err != nil {
		return fmt.Errorf("failed to ensure guild %s: %w", guildID, err)
	}
	return nil
}

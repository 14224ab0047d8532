package moderation

import (
	"fmt"

	"mod-helper/model"

	"github.com/jmoiron/sqlx"
)

// FindOrCreateMember resolves a (guild, user) pair to its member row,
// creating guild and member on first reference. The insert goes through
// ON CONFLICT so concurrent first-time access never produces duplicates.
func FindOrCreateMember(db *sqlx.DB, guildID, userID string) (*model.Member, error) {
	if err := EnsureGuild(db, guildID); err != nil {
		return nil, err
	}

	_, err := db.Exec(`INSERT INTO members (guild_id, user_id) VALUES (?, ?) ON CONFLICT(guild_id, user_id) DO NOTHING`, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create member %s in guild %s: %w", userID, guildID, err)
	}

	var member model.Member
	err = db.Get(&member, `SELECT member_id, guild_id, user_id FROM members WHERE guild_id = ? AND user_id = ?`, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s in guild %s: %w", userID, guildID, err)
	}
	return &member, nil
}

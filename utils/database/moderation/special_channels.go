package moderation

import (
	"database/sql"
	"errors"
	"fmt"

	"mod-helper/model"

	"github.com/jmoiron/sqlx"
)

// SetSpecialChannel binds channelID to the given purpose for a guild. An
// existing binding for the same (guild, type) is updated in place; the UNIQUE
// constraint keeps concurrent writers from inserting a second row.
func SetSpecialChannel(db *sqlx.DB, guildID string, chType model.SpecialChannelType, channelID string) error {
	if err := EnsureGuild(db, guildID); err != nil {
		return err
	}

	query := `INSERT INTO special_channels (guild_id, type, channel_id) VALUES (?, ?, ?)
	          ON CONFLICT(guild_id, type) DO UPDATE SET channel_id = excluded.channel_id`
	if _, err := db.Exec(query, guildID, string(chType), channelID); err != nil {
		return fmt.Errorf("failed to set %s channel for guild %s: %w", chType, guildID, err)
	}
	return nil
}

// GetSpecialChannel returns the channel bound to the given purpose, or
// ErrNotFound when no binding exists. Pure read.
func GetSpecialChannel(db *sqlx.DB, guildID string, chType model.SpecialChannelType) (string, error) {
	var channelID string
	err := db.Get(&channelID, `SELECT channel_id FROM special_channels WHERE guild_id = ? AND type = ?`, guildID, string(chType))
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s channel for guild %s: %w", chType, guildID, err)
	}
	return channelID, nil
}

// UnsetSpecialChannel removes the binding for the given purpose. Removing a
// binding that does not exist is a no-op, the post-condition holds either way.
func UnsetSpecialChannel(db *sqlx.DB, guildID string, chType model.SpecialChannelType) error {
	_, err := db.Exec(`DELETE FROM special_channels WHERE guild_id = ? AND type = ?`, guildID, string(chType))
	if err != nil {
		return fmt.Errorf("failed to unset %s channel for guild %s: %w", chType, guildID, err)
	}
	return nil
}

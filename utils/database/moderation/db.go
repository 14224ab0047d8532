package moderation

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a lookup matches no row. Absence is a normal
// outcome and callers must not treat it as a store failure.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyAppealed is returned when a warning already has an appeal.
var ErrAlreadyAppealed = errors.New("warning already appealed")

// Init initializes the database and ensures all necessary tables are created.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite allows a single writer; one pooled connection avoids
	// "database is locked" errors under concurrent handlers.
	db.SetMaxOpenConns(1)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS guilds (
		    guild_id TEXT NOT NULL PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS members (
		    member_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    guild_id TEXT NOT NULL REFERENCES guilds(guild_id),
		    user_id TEXT NOT NULL,
		    UNIQUE(guild_id, user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS special_channels (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    guild_id TEXT NOT NULL REFERENCES guilds(guild_id),
		    type TEXT NOT NULL,
		    channel_id TEXT NOT NULL,
		    UNIQUE(guild_id, type)
		);`,
		`CREATE TABLE IF NOT EXISTS warnings (
		    warning_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    offender_member_id INTEGER NOT NULL REFERENCES members(member_id),
		    moderator_member_id INTEGER NOT NULL REFERENCES members(member_id),
		    reason TEXT NOT NULL,
		    timestamp INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS appeals (
		    appeal_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    warning_id INTEGER NOT NULL UNIQUE REFERENCES warnings(warning_id),
		    appellant_user_id TEXT NOT NULL,
		    timestamp INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}

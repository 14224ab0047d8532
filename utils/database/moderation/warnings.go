package moderation

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mod-helper/model"

	"github.com/jmoiron/sqlx"
)

// AddWarningRecord resolves offender and moderator to member rows and inserts
// the warning, returning the new warning's ID. Member resolution is an
// idempotent upsert and members are never deleted, so the steps need no
// enclosing transaction. The record must be persisted before any notification
// is sent, the ID is embedded in the appeal button.
func AddWarningRecord(db *sqlx.DB, guildID, offenderUserID, moderatorUserID, reason string) (int64, error) {
	offender, err := FindOrCreateMember(db, guildID, offenderUserID)
	if err != nil {
		return 0, err
	}
	moderator, err := FindOrCreateMember(db, guildID, moderatorUserID)
	if err != nil {
		return 0, err
	}

	record := model.Warning{
		OffenderMemberID:  offender.MemberID,
		ModeratorMemberID: moderator.MemberID,
		Reason:            reason,
		Timestamp:         time.Now().Unix(),
	}

	query := `INSERT INTO warnings (offender_member_id, moderator_member_id, reason, timestamp)
	          VALUES (:offender_member_id, :moderator_member_id, :reason, :timestamp)`
	result, err := db.NamedExec(query, record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert warning record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

const warningDetailColumns = `w.warning_id, o.guild_id AS guild_id,
	       o.user_id AS offender_user_id, m.user_id AS moderator_user_id,
	       w.reason, w.timestamp
	FROM warnings w
	JOIN members o ON o.member_id = w.offender_member_id
	JOIN members m ON m.member_id = w.moderator_member_id`

// GetWarningsByMember returns all warnings for one user in one guild, joined
// with offender and moderator snowflakes, in creation order.
func GetWarningsByMember(db *sqlx.DB, guildID, userID string) ([]model.WarningDetail, error) {
	var records []model.WarningDetail
	query := `SELECT ` + warningDetailColumns + `
	WHERE o.guild_id = ? AND o.user_id = ?
	ORDER BY w.warning_id ASC`
	if err := db.Select(&records, query, guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to get warnings for user %s in guild %s: %w", userID, guildID, err)
	}
	return records, nil
}

// GetWarningByID retrieves a single warning by its primary key.
func GetWarningByID(db *sqlx.DB, warningID int64) (*model.WarningDetail, error) {
	var record model.WarningDetail
	query := `SELECT ` + warningDetailColumns + `
	WHERE w.warning_id = ?`
	err := db.Get(&record, query, warningID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get warning by id %d: %w", warningID, err)
	}
	return &record, nil
}

// RecordAppeal marks a warning as appealed. The UNIQUE constraint on
// warning_id makes a second button press return ErrAlreadyAppealed instead
// of creating a duplicate.
func RecordAppeal(db *sqlx.DB, warningID int64, appellantUserID string) error {
	_, err := db.Exec(`INSERT INTO appeals (warning_id, appellant_user_id, timestamp) VALUES (?, ?, ?)`,
		warningID, appellantUserID, time.Now().Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrAlreadyAppealed
		}
		return fmt.Errorf("failed to record appeal for warning %d: %w", warningID, err)
	}
	return nil
}

// CountWarnings returns the total number of warnings recorded for a guild.
func CountWarnings(db *sqlx.DB, guildID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM warnings w
	JOIN members o ON o.member_id = w.offender_member_id
	WHERE o.guild_id = ?`
	if err := db.Get(&count, query, guildID); err != nil {
		return 0, fmt.Errorf("failed to count warnings for guild %s: %w", guildID, err)
	}
	return count, nil
}

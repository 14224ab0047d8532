package model

// SpecialChannelType marks a channel for one bot purpose. Values are a closed
// enumeration and are compared by identity, never by display string.
type SpecialChannelType string

const (
	SpecialChannelAppeals   SpecialChannelType = "appeals"
	SpecialChannelWelcome   SpecialChannelType = "welcome"
	SpecialChannelStarboard SpecialChannelType = "starboard"
	SpecialChannelLogs      SpecialChannelType = "logs"
)

// SpecialChannelTypes lists all valid types, in registration-choice order.
func SpecialChannelTypes() []SpecialChannelType {
	return []SpecialChannelType{
		SpecialChannelAppeals,
		SpecialChannelWelcome,
		SpecialChannelStarboard,
		SpecialChannelLogs,
	}
}

// Valid reports whether t is one of the known types.
func (t SpecialChannelType) Valid() bool {
	for _, known := range SpecialChannelTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayName 仅用于展示层，内部比较一律使用枚举值本身。
func (t SpecialChannelType) DisplayName() string {
	switch t {
	case SpecialChannelAppeals:
		return "申诉"
	case SpecialChannelWelcome:
		return "欢迎"
	case SpecialChannelStarboard:
		return "精选"
	case SpecialChannelLogs:
		return "日志"
	}
	return string(t)
}

// Guild represents one server known to the bot. Rows are created lazily on
// the first configuration write or member reference.
type Guild struct {
	GuildID string `db:"guild_id"`
}

// Member is one user's standing within one guild. Created on first reference
// as offender or moderator, never deleted.
type Member struct {
	MemberID int64  `db:"member_id"` // Primary Key, Auto-increment
	GuildID  string `db:"guild_id"`
	UserID   string `db:"user_id"`
}

// SpecialChannel binds a guild channel to a purpose. At most one row exists
// per (guild_id, type); the store enforces this with a UNIQUE constraint.
type SpecialChannel struct {
	ID        int64              `db:"id"`
	GuildID   string             `db:"guild_id"`
	Type      SpecialChannelType `db:"type"`
	ChannelID string             `db:"channel_id"`
}

// Warning is a single warning record. Immutable once created.
type Warning struct {
	WarningID         int64  `db:"warning_id"` // Primary Key, Auto-increment
	OffenderMemberID  int64  `db:"offender_member_id"`
	ModeratorMemberID int64  `db:"moderator_member_id"`
	Reason            string `db:"reason"`
	Timestamp         int64  `db:"timestamp"`
}

// WarningDetail is a warning joined with the offender and moderator
// snowflakes, as returned by history queries.
type WarningDetail struct {
	WarningID       int64  `db:"warning_id"`
	GuildID         string `db:"guild_id"`
	OffenderUserID  string `db:"offender_user_id"`
	ModeratorUserID string `db:"moderator_user_id"`
	Reason          string `db:"reason"`
	Timestamp       int64  `db:"timestamp"`
}

// Appeal records that a warning has been appealed. One appeal per warning.
type Appeal struct {
	AppealID        int64  `db:"appeal_id"`
	WarningID       int64  `db:"warning_id"`
	AppellantUserID string `db:"appellant_user_id"`
	Timestamp       int64  `db:"timestamp"`
}

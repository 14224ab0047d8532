package warn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mod-helper/model"
	"mod-helper/utils"

	"github.com/bwmarrin/discordgo"
)

// AppealButtonPrefix is the custom ID prefix of the appeal button attached to
// warning DMs. The full ID carries (warningID, offenderUsername) so a later
// press can be correlated without an extra lookup round trip.
const AppealButtonPrefix = "warning_appeal_btn"

func appealCustomID(warningID int64, username string) string {
	return fmt.Sprintf("%s:%d:%s", AppealButtonPrefix, warningID, username)
}

func parseAppealCustomID(customID string) (int64, string, error) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != AppealButtonPrefix {
		return 0, "", fmt.Errorf("invalid appeal custom ID: %s", customID)
	}
	warningID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid warning ID in custom ID %s: %w", customID, err)
	}
	return warningID, parts[2], nil
}

func appealComponents(warningID int64, username string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "申诉",
					Style:    discordgo.SuccessButton,
					CustomID: appealCustomID(warningID, username),
				},
			},
		},
	}
}

// buildWarningDM builds the direct notification sent to the offender. The
// moderator is only named when the warning is not silent.
func buildWarningDM(guildName, reason, moderatorMention string, silent bool) *discordgo.MessageEmbed {
	description := fmt.Sprintf("原因: `%s`", reason)
	if !silent {
		description += fmt.Sprintf("\n管理员: %s", moderatorMention)
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("你在 '%s' 收到了一条警告", guildName),
		Description: description,
		Color:       utils.ColorFail,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// buildIssuedEmbed builds the acknowledgement shown to the moderator. A
// failed DM is reported as a soft note, the record itself always stands.
func buildIssuedEmbed(offenderMention, reason string, dmFailed bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "警告已记录",
		Color: utils.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "违规用户", Value: offenderMention, Inline: true},
			{Name: "原因", Value: fmt.Sprintf("`%s`", reason), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if dmFailed {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "私信通知",
			Value: "⚠️ 无法向该用户发送私信，警告仍已记录。",
		})
	}
	return embed
}

// buildAppealEmbed builds the message posted to the guild's appeals channel.
func buildAppealEmbed(detail *model.WarningDetail, username string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "收到新的申诉",
		Color: utils.ColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "警告ID", Value: fmt.Sprintf("%d", detail.WarningID), Inline: true},
			{Name: "用户", Value: fmt.Sprintf("<@%s> (%s)", detail.OffenderUserID, username), Inline: true},
			{Name: "原因", Value: detail.Reason},
			{Name: "执行管理员", Value: fmt.Sprintf("<@%s>", detail.ModeratorUserID), Inline: true},
			{Name: "警告时间", Value: time.Unix(detail.Timestamp, 0).Format(time.RFC1123), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// renderHistoryPage fills one embed page of the warning history view.
func renderHistoryPage(records []model.WarningDetail, embed *discordgo.MessageEmbed) {
	for _, record := range records {
		timestamp := time.Unix(record.Timestamp, 0).Format(time.RFC1123)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("ID: %d, 时间: %s", record.WarningID, timestamp),
			Value: fmt.Sprintf("原因: %s\n管理员: <@%s>", record.Reason, record.ModeratorUserID),
		})
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

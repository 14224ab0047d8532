package warn

import (
	"errors"
	"fmt"
	"log"

	"mod-helper/bot"
	"mod-helper/model"
	"mod-helper/utils"
	"mod-helper/utils/database/moderation"

	"github.com/bwmarrin/discordgo"
)

// HandleAppealButton 处理警告私信中的申诉按钮。每条警告只能申诉一次，
// 重复按下会收到临时提示而不会产生第二条申诉。
func HandleAppealButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	warningID, username, err := parseAppealCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("Invalid appeal custom ID: %v", err)
		return
	}

	presser := interactionUser(i)
	if presser == nil {
		return
	}

	detail, err := moderation.GetWarningByID(b.DB, warningID)
	if err != nil {
		if errors.Is(err, moderation.ErrNotFound) {
			utils.SendSimpleResponse(s, i, "未找到对应的警告记录。")
			return
		}
		log.Printf("Error loading warning %d: %v", warningID, err)
		utils.SendErrorResponse(s, i, "读取警告记录失败。")
		return
	}

	if presser.ID != detail.OffenderUserID {
		utils.SendSimpleResponse(s, i, "只有被警告的用户可以提交申诉。")
		return
	}

	channelID, err := moderation.GetSpecialChannel(b.DB, detail.GuildID, model.SpecialChannelAppeals)
	if err != nil {
		if errors.Is(err, moderation.ErrNotFound) {
			utils.SendSimpleResponse(s, i, "该服务器暂未开放申诉。")
			return
		}
		log.Printf("Error reading appeals channel for guild %s: %v", detail.GuildID, err)
		utils.SendErrorResponse(s, i, "读取服务器配置失败。")
		return
	}

	if err := moderation.RecordAppeal(b.DB, warningID, presser.ID); err != nil {
		if errors.Is(err, moderation.ErrAlreadyAppealed) {
			utils.SendSimpleResponse(s, i, "你已提交过该警告的申诉。")
			return
		}
		log.Printf("Error recording appeal for warning %d: %v", warningID, err)
		utils.SendErrorResponse(s, i, "提交申诉失败。")
		return
	}

	cfg := b.GetConfig()

	// 申诉已记录，投递失败只记日志
	if _, err := s.ChannelMessageSendEmbed(channelID, buildAppealEmbed(detail, username)); err != nil {
		log.Printf("Failed to post appeal for warning %d to channel %s: %v", warningID, channelID, err)
		if logErr := utils.LogError(cfg.LogWebhookURL, "Warn", "申诉投递失败",
			fmt.Sprintf("警告 %d 的申诉无法投递到频道 %s", warningID, channelID)); logErr != nil {
			log.Printf("Failed to send appeal delivery log: %v", logErr)
		}
	}

	utils.SendSimpleResponse(s, i, "申诉已提交，管理员会尽快处理。")

	if err := utils.LogInfo(cfg.LogWebhookURL, "Warn", "申诉",
		fmt.Sprintf("用户 %s 对警告 %d 提交了申诉", presser.ID, warningID)); err != nil {
		log.Printf("Failed to send appeal log: %v", err)
	}
}

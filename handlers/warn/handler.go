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

// HandleWarnCommand 处理 /warn 命令：先持久化警告记录，再发送私信通知和
// 管理员回执。私信失败不会回滚记录，只在回执中附带提示。
func HandleWarnCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	targetUser := optionMap["user"].UserValue(s)
	reason := optionMap["reason"].StringValue()
	silent := false
	if opt, ok := optionMap["silent"]; ok {
		silent = opt.BoolValue()
	}

	// silent 同时决定回执的可见性
	if err := utils.DeferResponse(s, i, silent); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	// 前置条件：服务器必须已配置申诉频道，警告私信中会附带申诉按钮。
	if _, err := moderation.GetSpecialChannel(b.DB, i.GuildID, model.SpecialChannelAppeals); err != nil {
		if errors.Is(err, moderation.ErrNotFound) {
			utils.SendFollowUpEmbed(s, i.Interaction, &discordgo.MessageEmbed{
				Description: "此服务器未配置申诉频道，请先使用 `/config set` 设置。",
				Color:       utils.ColorFail,
			})
			return
		}
		log.Printf("Error reading appeals channel for guild %s: %v", i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "读取服务器配置失败。")
		return
	}

	moderator := i.Member.User
	warningID, err := moderation.AddWarningRecord(b.DB, i.GuildID, targetUser.ID, moderator.ID, reason)
	if err != nil {
		log.Printf("Error saving warning record: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "保存警告记录失败。")
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
	}
	guildName := "一个服务器"
	if err == nil {
		guildName = guild.Name
	}

	cfg := b.GetConfig()

	// 记录已持久化，通知只是尽力而为
	dmEmbed := buildWarningDM(guildName, reason, moderator.Mention(), silent)
	dmErr := utils.SendPrivateEmbed(s, targetUser.ID, dmEmbed, appealComponents(warningID, targetUser.Username))
	if dmErr != nil {
		log.Printf("Failed to DM warning %d to user %s: %v", warningID, targetUser.ID, dmErr)
		if err := utils.LogWarn(cfg.LogWebhookURL, "Warn", "私信失败",
			fmt.Sprintf("无法向用户 %s 发送警告 %d 的私信", targetUser.ID, warningID)); err != nil {
			log.Printf("Failed to send DM failure log: %v", err)
		}
	}

	utils.SendFollowUpEmbed(s, i.Interaction, buildIssuedEmbed(targetUser.Mention(), reason, dmErr != nil))

	if err := utils.LogInfo(cfg.LogWebhookURL, "Warn", "警告",
		fmt.Sprintf("服务器 %s: %s 警告了 %s，警告ID %d", i.GuildID, moderator.ID, targetUser.ID, warningID)); err != nil {
		log.Printf("Failed to send warn log: %v", err)
	}
}

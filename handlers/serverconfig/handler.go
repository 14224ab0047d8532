package serverconfig

import (
	"errors"
	"fmt"
	"log"

	"mod-helper/bot"
	"mod-helper/model"
	"mod-helper/utils"
	"mod-helper/utils/database/moderation"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// ErrPermissionDenied means the bot cannot send messages in the target
// channel. The store is never touched when this is returned.
var ErrPermissionDenied = errors.New("missing send permission in target channel")

// permissionCheck reports whether the bot can send messages in a channel.
// Narrowed to a function so the set flow is testable without a gateway.
type permissionCheck func(channelID string) (bool, error)

func sessionCanSend(s *discordgo.Session) permissionCheck {
	return func(channelID string) (bool, error) {
		perms, err := s.State.UserChannelPermissions(s.State.User.ID, channelID)
		if err != nil {
			perms, err = s.UserChannelPermissions(s.State.User.ID, channelID)
		}
		if err != nil {
			return false, err
		}
		return perms&discordgo.PermissionSendMessages != 0, nil
	}
}

// setChannel validates the bot's permission on the target channel before any
// write, then upserts the binding.
func setChannel(db *sqlx.DB, canSend permissionCheck, guildID string, chType model.SpecialChannelType, channelID string) error {
	ok, err := canSend(channelID)
	if err != nil {
		return fmt.Errorf("failed to resolve permissions for channel %s: %w", channelID, err)
	}
	if !ok {
		return ErrPermissionDenied
	}
	return moderation.SetSpecialChannel(db, guildID, chType, channelID)
}

func statusEmbed(description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       color,
	}
}

// HandleConfigCommand 处理 /config 命令的 set/get/unset 子命令。
func HandleConfigCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]

	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		optionMap[opt.Name] = opt
	}

	chType := model.SpecialChannelType(optionMap["type"].StringValue())
	if !chType.Valid() {
		utils.SendFollowUpError(s, i.Interaction, "未知的频道用途。")
		return
	}

	switch sub.Name {
	case "set":
		handleSet(s, i, b, chType, optionMap)
	case "get":
		handleGet(s, i, b, chType)
	case "unset":
		handleUnset(s, i, b, chType)
	}
}

func handleSet(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, chType model.SpecialChannelType, optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	target := optionMap["channel"].ChannelValue(s)
	if target == nil {
		utils.SendFollowUpError(s, i.Interaction, "无法解析目标频道。")
		return
	}

	err := setChannel(b.DB, sessionCanSend(s), i.GuildID, chType, target.ID)
	if errors.Is(err, ErrPermissionDenied) {
		utils.SendFollowUpEmbed(s, i.Interaction, statusEmbed(
			fmt.Sprintf("我无法在 <#%s> 中发言，请先调整频道权限。", target.ID), utils.ColorFail))
		return
	}
	if err != nil {
		log.Printf("Error setting %s channel for guild %s: %v", chType, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "保存频道配置失败。")
		return
	}

	utils.SendFollowUpEmbed(s, i.Interaction, statusEmbed(
		fmt.Sprintf("%s频道已设置为 <#%s>", chType.DisplayName(), target.ID), utils.ColorSuccess))

	cfg := b.GetConfig()
	if err := utils.LogInfo(cfg.LogWebhookURL, "ServerConfig", "设置频道",
		fmt.Sprintf("服务器 %s 的%s频道设置为 %s", i.GuildID, chType.DisplayName(), target.ID)); err != nil {
		log.Printf("Failed to send config log: %v", err)
	}
}

func handleGet(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, chType model.SpecialChannelType) {
	channelID, err := moderation.GetSpecialChannel(b.DB, i.GuildID, chType)
	if errors.Is(err, moderation.ErrNotFound) {
		utils.SendFollowUpEmbed(s, i.Interaction, statusEmbed(
			fmt.Sprintf("当前未设置%s频道，可使用 `/config set` 命令进行设置。", chType.DisplayName()), utils.ColorFail))
		return
	}
	if err != nil {
		log.Printf("Error getting %s channel for guild %s: %v", chType, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "读取频道配置失败。")
		return
	}

	utils.SendFollowUpEmbed(s, i.Interaction, statusEmbed(
		fmt.Sprintf("当前的%s频道为 <#%s>", chType.DisplayName(), channelID), utils.ColorNeutral))
}

func handleUnset(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, chType model.SpecialChannelType) {
	if err := moderation.UnsetSpecialChannel(b.DB, i.GuildID, chType); err != nil {
		log.Printf("Error unsetting %s channel for guild %s: %v", chType, i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "取消频道配置失败。")
		return
	}

	// 绑定不存在时同样回复成功：后置条件（无绑定）两种情况下都成立。
	utils.SendFollowUpEmbed(s, i.Interaction, statusEmbed(
		fmt.Sprintf("%s频道已取消设置", chType.DisplayName()), utils.ColorSuccess))
}
